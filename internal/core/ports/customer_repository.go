package ports

import (
	"context"

	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its identifier.
	// Returns an ObjectNotFoundError if no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves every customer.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}

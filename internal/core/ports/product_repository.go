package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its identifier.
	// Returns an ObjectNotFoundError if no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]*product.Product, error)
}

package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetCustomersQueryIsNotConstructed = errors.New(
		"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
	)
)

// GetCustomersQuery retrieves all registered customers.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query to retrieve all customers.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomersQueryIsNotConstructed if validation fails.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// CustomerResponse represents one registered customer.
type CustomerResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
}

// Package queries contains read-only operations for the CQRS read side.
// Query handlers go straight to the database and return lightweight response
// structs instead of domain aggregates.
package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves all orders with their line items.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("found %d orders\n", len(orders))
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrderItemResponse represents one line item of an order.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	UnitPrice float64
}

// OrderResponse represents order information for read endpoints.
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Amount     float64
	State      string
	Notes      string
	CreatedAt  time.Time
	Items      []OrderItemResponse
}

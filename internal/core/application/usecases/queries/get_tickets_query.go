package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetTicketsQueryIsNotConstructed = errors.New(
		"GetTicketsQuery must be created via NewGetTicketsQuery constructor",
	)
)

// GetTicketsQuery retrieves cancellation tickets, either all of them or the
// ones opened for a single order.
type GetTicketsQuery struct {
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTicketsQuery creates a query for all cancellation tickets.
func NewGetTicketsQuery() GetTicketsQuery {
	return GetTicketsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetTicketsForOrderQuery creates a query scoped to one order's tickets.
// Validates that the order ID is valid.
func NewGetTicketsForOrderQuery(orderID kernel.UUID) (GetTicketsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTicketsQuery{}, err
	}

	return GetTicketsQuery{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTicketsQueryIsNotConstructed if validation fails.
func (q GetTicketsQuery) Validate() error {
	return q.guard.Validate(ErrGetTicketsQueryIsNotConstructed)
}

// OrderID returns the order filter, nil when listing all tickets.
func (q GetTicketsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// TicketResponse represents one cancellation ticket.
type TicketResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Reason    string
	CreatedAt time.Time
}

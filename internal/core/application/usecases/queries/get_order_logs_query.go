package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetOrderLogsQueryIsNotConstructed = errors.New(
		"GetOrderLogsQuery must be created via NewGetOrderLogsQuery constructor",
	)
)

// GetOrderLogsQuery retrieves the transition history of one order.
//
// Example:
//
//	query, _ := NewGetOrderLogsQuery(orderID)
//	handler := NewGetOrderLogsQueryHandler(db)
//
//	logs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order history: %w", err)
//	}
//	for _, entry := range logs {
//	    fmt.Printf("%s -> %s via %s\n", entry.PreviousState, entry.NewState, entry.ActionTaken)
//	}
type GetOrderLogsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderLogsQuery creates a query for one order's transition history.
// Validates that the order ID is valid.
func NewGetOrderLogsQuery(orderID kernel.UUID) (GetOrderLogsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderLogsQuery{}, err
	}

	return GetOrderLogsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderLogsQueryIsNotConstructed if validation fails.
func (q GetOrderLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLogsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose history is requested.
func (q GetOrderLogsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TransitionLogResponse represents one audit record of an order's lifecycle.
// PreviousState is nil for the creation entry.
type TransitionLogResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	PreviousState *string
	NewState      string
	ActionTaken   string
	OccurredAt    time.Time
}

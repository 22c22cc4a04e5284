package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetAllowedActionsQueryIsNotConstructed = errors.New(
		"GetAllowedActionsQuery must be created via NewGetAllowedActionsQuery constructor",
	)
)

// GetAllowedActionsQuery asks which lifecycle actions an order's current
// state permits.
//
// Example:
//
//	query, _ := NewGetAllowedActionsQuery(orderID)
//	handler := NewGetAllowedActionsQueryHandler(db, graph)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get allowed actions: %w", err)
//	}
//	fmt.Printf("order in %s allows %v\n", response.CurrentState, response.AllowedActions)
type GetAllowedActionsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAllowedActionsQuery creates a query for an order's permitted actions.
// Validates that the order ID is valid.
func NewGetAllowedActionsQuery(orderID kernel.UUID) (GetAllowedActionsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetAllowedActionsQuery{}, err
	}

	return GetAllowedActionsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllowedActionsQueryIsNotConstructed if validation fails.
func (q GetAllowedActionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllowedActionsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order in question.
func (q GetAllowedActionsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// AllowedActionsResponse lists the actions valid from an order's current
// state. Terminal states yield an empty list.
type AllowedActionsResponse struct {
	OrderID        kernel.UUID
	CurrentState   string
	AllowedActions []string
}

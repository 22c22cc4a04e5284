package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllowedActionsQueryHandler answers which actions an order's current
// state permits. The answer comes from the state graph, not the rule engine,
// so a listed action can still be rejected by rules when actually attempted.
type GetAllowedActionsQueryHandler struct {
	db    *gorm.DB
	graph order.Graph
}

// NewGetAllowedActionsQueryHandler creates a handler for allowed-action queries.
// Requires a GORM database connection and the state graph.
func NewGetAllowedActionsQueryHandler(db *gorm.DB, graph order.Graph) GetAllowedActionsQueryHandler {
	return GetAllowedActionsQueryHandler{db: db, graph: graph}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetAllowedActionsQueryHandler) Handle(
	ctx context.Context,
	query GetAllowedActionsQuery,
) (AllowedActionsResponse, error) {
	if err := query.Validate(); err != nil {
		return AllowedActionsResponse{}, err
	}

	row := h.db.WithContext(ctx).
		Raw(`SELECT current_state FROM orders WHERE id = ?`, query.OrderID().String()).
		Row()

	var stored string
	if err := row.Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AllowedActionsResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
		}
		return AllowedActionsResponse{}, err
	}

	state, err := order.ParseState(stored)
	if err != nil {
		return AllowedActionsResponse{}, err
	}

	actions := h.graph.AllowedActions(state)
	names := make([]string, 0, len(actions))
	for _, action := range actions {
		names = append(names, action.String())
	}

	return AllowedActionsResponse{
		OrderID:        query.OrderID(),
		CurrentState:   state.String(),
		AllowedActions: names,
	}, nil
}

package queries

import (
	"context"

	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderLogsQueryHandler retrieves an order's transition history.
// Distinguishes a missing order (ObjectNotFoundError) from an order that
// simply has no recorded transitions yet.
type GetOrderLogsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderLogsQueryHandler creates a handler for per-order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderLogsQueryHandler(db *gorm.DB) GetOrderLogsQueryHandler {
	return GetOrderLogsQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's history.
// Entries are ordered by transition time ascending, oldest first, so the
// creation record leads and the current state closes the list.
func (h GetOrderLogsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLogsQuery,
) ([]TransitionLogResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(1) FROM orders WHERE id = ?`, query.OrderID().String()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("order_id", query.OrderID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			previous_state,
			new_state,
			action_taken,
			occurred_at
		FROM transition_logs
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransitionLogs(rows)
}

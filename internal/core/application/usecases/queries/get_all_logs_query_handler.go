package queries

import (
	"context"
	"database/sql"
	"time"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllLogsQueryHandler retrieves the most recent transition records across
// all orders, newest first.
type GetAllLogsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllLogsQueryHandler creates a handler for the global transition feed.
// Requires a GORM database connection for query execution.
func NewGetAllLogsQueryHandler(db *gorm.DB) GetAllLogsQueryHandler {
	return GetAllLogsQueryHandler{db: db}
}

// Handle executes the query to retrieve the global feed.
// Entries are ordered by transition time descending and bounded by the
// query's limit.
func (h GetAllLogsQueryHandler) Handle(
	ctx context.Context,
	query GetAllLogsQuery,
) ([]TransitionLogResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		ORDER BY occurred_at DESC, id DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransitionLogs(rows)
}

// scanTransitionLogs maps transition log rows to responses. The column order
// is fixed: id, order_id, previous_state, new_state, action_taken, occurred_at.
func scanTransitionLogs(rows *sql.Rows) ([]TransitionLogResponse, error) {
	logs := make([]TransitionLogResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			orderID    uuid.UUID
			previous   sql.NullString
			newState   string
			action     string
			occurredAt time.Time
		)

		if err := rows.Scan(&id, &orderID, &previous, &newState, &action, &occurredAt); err != nil {
			return nil, err
		}

		logID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		ownerID, err := kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}

		entry := TransitionLogResponse{
			ID:          logID,
			OrderID:     ownerID,
			NewState:    newState,
			ActionTaken: action,
			OccurredAt:  occurredAt,
		}
		if previous.Valid {
			value := previous.String
			entry.PreviousState = &value
		}

		logs = append(logs, entry)
	}

	return logs, rows.Err()
}

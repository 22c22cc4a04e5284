package queries

import (
	"context"
	"database/sql"
	"time"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTicketsQueryHandler retrieves cancellation tickets from the database.
type GetTicketsQueryHandler struct {
	db *gorm.DB
}

// NewGetTicketsQueryHandler creates a handler for ticket listings.
// Requires a GORM database connection for query execution.
func NewGetTicketsQueryHandler(db *gorm.DB) GetTicketsQueryHandler {
	return GetTicketsQueryHandler{db: db}
}

// Handle executes the query. Tickets are ordered newest first.
func (h GetTicketsQueryHandler) Handle(
	ctx context.Context,
	query GetTicketsQuery,
) ([]TicketResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)

	if query.OrderID() != nil {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT id, order_id, reason, created_at
			FROM tickets
			WHERE order_id = ?
			ORDER BY created_at DESC
		`, query.OrderID().String()).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT id, order_id, reason, created_at
			FROM tickets
			ORDER BY created_at DESC
		`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]TicketResponse, 0)

	for rows.Next() {
		var (
			id        uuid.UUID
			orderID   uuid.UUID
			reason    string
			createdAt time.Time
		)

		if err = rows.Scan(&id, &orderID, &reason, &createdAt); err != nil {
			return nil, err
		}

		ticketID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		tickets = append(tickets, TicketResponse{
			ID:        ticketID,
			OrderID:   ownerID,
			Reason:    reason,
			CreatedAt: createdAt,
		})
	}

	return tickets, rows.Err()
}

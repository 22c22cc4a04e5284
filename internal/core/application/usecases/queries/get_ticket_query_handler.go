package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTicketQueryHandler retrieves a single cancellation ticket.
type GetTicketQueryHandler struct {
	db *gorm.DB
}

// NewGetTicketQueryHandler creates a handler for single ticket lookups.
// Requires a GORM database connection for query execution.
func NewGetTicketQueryHandler(db *gorm.DB) GetTicketQueryHandler {
	return GetTicketQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError if no ticket has the requested id.
func (h GetTicketQueryHandler) Handle(
	ctx context.Context,
	query GetTicketQuery,
) (TicketResponse, error) {
	if err := query.Validate(); err != nil {
		return TicketResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, reason, created_at
		FROM tickets
		WHERE id = ?
	`, query.TicketID().String()).Row()

	var (
		id        uuid.UUID
		orderID   uuid.UUID
		reason    string
		createdAt time.Time
	)

	if err := row.Scan(&id, &orderID, &reason, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TicketResponse{}, errs.NewObjectNotFoundError("ticket_id", query.TicketID())
		}
		return TicketResponse{}, err
	}

	ticketID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TicketResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return TicketResponse{}, err
	}

	return TicketResponse{
		ID:        ticketID,
		OrderID:   ownerID,
		Reason:    reason,
		CreatedAt: createdAt,
	}, nil
}

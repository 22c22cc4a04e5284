// Package ticketrepo persists cancellation tickets.
package ticketrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TicketDTO represents one persisted cancellation ticket.
type TicketDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Reason    string
	CreatedAt time.Time
}

// TableName specifies the database table name for cancellation tickets.
func (TicketDTO) TableName() string {
	return "tickets"
}

// fromDomain converts a ticket to its database representation.
func fromDomain(ticket order.Ticket) TicketDTO {
	return TicketDTO{
		ID:        ticket.ID().Bytes(),
		OrderID:   ticket.OrderID().Bytes(),
		Reason:    ticket.Reason(),
		CreatedAt: ticket.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a ticket.
func toDomain(dto TicketDTO) (order.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Ticket{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Ticket{}, err
	}

	return order.RestoreTicket(id, orderID, dto.Reason, dto.CreatedAt), nil
}

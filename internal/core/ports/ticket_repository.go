package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// TicketRepository defines the persistence contract for cancellation tickets.
type TicketRepository interface {
	// Add persists a new cancellation ticket.
	Add(ctx context.Context, ticket order.Ticket) error

	// Get retrieves a ticket by its identifier.
	// Returns an ObjectNotFoundError if no such ticket exists.
	Get(ctx context.Context, id kernel.UUID) (order.Ticket, error)

	// GetByOrderID retrieves the ticket created for the given order.
	// Returns an ObjectNotFoundError if the order has no ticket.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (order.Ticket, error)

	// GetAll retrieves every ticket.
	GetAll(ctx context.Context) ([]order.Ticket, error)
}

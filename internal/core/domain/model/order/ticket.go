package order

import (
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// ErrCancellationReasonIsRequired is returned when a cancel transition is
// attempted without a non-empty cancellation reason.
var ErrCancellationReasonIsRequired = errs.NewValueIsRequiredError("cancellation_reason")

// Ticket records the cancellation of an order. A ticket is created only when
// a cancel transition commits, and its reason is never empty.
type Ticket struct {
	id        kernel.UUID
	orderID   kernel.UUID
	reason    string
	createdAt time.Time
}

// NewTicket creates a cancellation ticket. The reason is trimmed and must be
// non-empty.
func NewTicket(orderID kernel.UUID, reason string) (Ticket, error) {
	if err := orderID.Validate(); err != nil {
		return Ticket{}, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Ticket{}, ErrCancellationReasonIsRequired
	}

	return Ticket{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		reason:    reason,
		createdAt: time.Now().UTC(),
	}, nil
}

// RestoreTicket reconstructs a ticket from persistence.
func RestoreTicket(id, orderID kernel.UUID, reason string, createdAt time.Time) Ticket {
	return Ticket{
		id:        id,
		orderID:   orderID,
		reason:    reason,
		createdAt: createdAt,
	}
}

// ID returns the ticket identifier.
func (t Ticket) ID() kernel.UUID {
	return t.id
}

// OrderID returns the identifier of the cancelled order.
func (t Ticket) OrderID() kernel.UUID {
	return t.orderID
}

// Reason returns the cancellation reason.
func (t Ticket) Reason() string {
	return t.reason
}

// CreatedAt returns when the ticket was created.
func (t Ticket) CreatedAt() time.Time {
	return t.createdAt
}

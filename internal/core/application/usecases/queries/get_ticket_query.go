package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetTicketQueryIsNotConstructed = errors.New(
		"GetTicketQuery must be created via NewGetTicketQuery constructor",
	)
)

// GetTicketQuery retrieves a single cancellation ticket by its identifier.
type GetTicketQuery struct {
	ticketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTicketQuery creates a query for one cancellation ticket.
// Validates that the ticket ID is valid.
func NewGetTicketQuery(ticketID kernel.UUID) (GetTicketQuery, error) {
	if err := ticketID.Validate(); err != nil {
		return GetTicketQuery{}, err
	}

	return GetTicketQuery{
		ticketID: ticketID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTicketQueryIsNotConstructed if validation fails.
func (q GetTicketQuery) Validate() error {
	return q.guard.Validate(ErrGetTicketQueryIsNotConstructed)
}

// TicketID returns the requested ticket identifier.
func (q GetTicketQuery) TicketID() kernel.UUID {
	return q.ticketID
}

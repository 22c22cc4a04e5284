package queries

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var (
	ErrGetAllLogsQueryIsNotConstructed = errors.New(
		"GetAllLogsQuery must be created via NewGetAllLogsQuery constructor",
	)
)

// DefaultLogLimit bounds the global transition log listing when the caller
// does not supply a limit.
const DefaultLogLimit = 100

// GetAllLogsQuery retrieves recent transition records across all orders.
type GetAllLogsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetAllLogsQuery creates a query for the global transition feed.
// A non-positive limit falls back to DefaultLogLimit.
func NewGetAllLogsQuery(limit int) GetAllLogsQuery {
	if limit <= 0 {
		limit = DefaultLogLimit
	}

	return GetAllLogsQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllLogsQueryIsNotConstructed if validation fails.
func (q GetAllLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllLogsQueryIsNotConstructed)
}

// Limit returns the maximum number of entries to return.
func (q GetAllLogsQuery) Limit() int {
	return q.limit
}

package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// TransitionLogRepository is the append-only sink for transition audit
// records. Entries are never updated or deleted.
type TransitionLogRepository interface {
	// Append persists one audit record.
	Append(ctx context.Context, entry order.TransitionLog) error

	// GetByOrderID returns the order's history ordered by transition time
	// ascending. An order with no entries yields an empty slice.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]order.TransitionLog, error)

	// GetAll returns the most recent entries across all orders, ordered by
	// transition time descending, bounded by limit.
	GetAll(ctx context.Context, limit int) ([]order.TransitionLog, error)
}

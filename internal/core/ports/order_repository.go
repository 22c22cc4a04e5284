// Package ports defines the persistence contracts supplied to the core by
// outer adapters. The core consumes these narrow interfaces and never sees a
// concrete database type.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate, including its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, with line items loaded.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order and its dependent rows (items, logs, tickets).
	// Returns an ObjectNotFoundError if no such order exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// UpdateState persists the aggregate's current state, guarded by the
	// state the caller loaded (previous). If the stored row no longer holds
	// previous, a concurrent transition won the race: the update affects
	// zero rows and a VersionIsInvalidError is returned so the surrounding
	// transaction rolls back instead of applying a stale transition.
	UpdateState(ctx context.Context, aggregate *order.Order, previous order.State) error

	// CountInState reports how many orders currently sit in the given state.
	CountInState(ctx context.Context, state order.State) (int64, error)
}

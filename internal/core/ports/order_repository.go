package ports

import (
	"context"

	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The in-memory order store is the source of truth while the process runs;
// the repository is the write-through collaborator that makes orders survive
// restarts and feeds the store's startup restore.
type OrderRepository interface {
	// Add persists a newly submitted order aggregate together with its
	// line items. The order must be valid and not already persisted.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current state of an existing order aggregate,
	// including its item statuses and timestamps.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves the full order history, most-recent-first, for the
	// store's startup restore.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Count returns the number of persisted orders. Used once at startup
	// to seed the order-number counter.
	Count(ctx context.Context) (int64, error)
}

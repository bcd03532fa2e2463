package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// NextID reserves the next sequential order identifier.
	// Identifiers are assigned inside the surrounding transaction, so a
	// rolled back creation never leaves a gap.
	NextID(ctx context.Context) (int64, error)

	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no order exists with the id.
	Get(ctx context.Context, id int64) (*order.Order, error)
}

package ports

import (
	"context"

	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// NextID reserves the next sequential product identifier.
	// Identifiers are assigned inside the surrounding transaction, so a
	// rolled back listing never leaves a gap.
	NextID(ctx context.Context) (int64, error)

	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no product exists with the id.
	Get(ctx context.Context, id int64) (*product.Product, error)
}

package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetCountsQueryIsNotConstructed = errors.New(
	"GetCountsQuery must be created via NewGetCountsQuery constructor",
)

// GetCountsQuery retrieves the running totals of listed products and
// created orders. Because identifiers are sequential and gapless, the
// totals double as the highest assigned identifiers.
type GetCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCountsQuery creates a totals query.
func NewGetCountsQuery() GetCountsQuery {
	return GetCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetCountsQueryIsNotConstructed)
}

// GetCountsQueryResponse represents the marketplace totals.
type GetCountsQueryResponse struct {
	Products int64
	Orders   int64
}

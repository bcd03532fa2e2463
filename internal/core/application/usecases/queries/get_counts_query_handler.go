package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCountsQueryHandler retrieves marketplace totals from the database.
type GetCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetCountsQueryHandler creates a handler for totals queries.
func NewGetCountsQueryHandler(db *gorm.DB) GetCountsQueryHandler {
	return GetCountsQueryHandler{db: db}
}

// Handle executes the totals query.
func (h GetCountsQueryHandler) Handle(ctx context.Context, query GetCountsQuery) (GetCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCountsQueryResponse{}, err
	}

	var resp GetCountsQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders)
	`).Row()

	if err := row.Scan(&resp.Products, &resp.Orders); err != nil {
		return GetCountsQueryResponse{}, err
	}

	return resp, nil
}

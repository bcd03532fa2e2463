package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/pkg/errs"
)

// GetProductQueryHandler retrieves catalog products from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for product queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query and returns the product, or
// errs.ObjectNotFoundError when no product exists with the id.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

	var resp GetProductQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			seller_id
		FROM products
		WHERE id = ?
	`, query.ProductID()).Row()

	err := row.Scan(&resp.ID, &resp.Name, &resp.Description, &resp.Price, &resp.SellerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetProductQueryResponse{}, errs.NewObjectNotFoundError("product", query.ProductID())
		}
		return GetProductQueryResponse{}, err
	}

	return resp, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves orders from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order state, or
// errs.ObjectNotFoundError when no order exists with the id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var status int
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			buyer_id,
			seller_id,
			validator_id,
			courier_id,
			status,
			is_validated,
			completion_requested
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.ProductID,
		&resp.BuyerID,
		&resp.SellerID,
		&resp.ValidatorID,
		&resp.CourierID,
		&status,
		&resp.IsValidated,
		&resp.CompletionRequested,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	resp.Status = order.Status(status).String()
	return resp, nil
}

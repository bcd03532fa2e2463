// Package queries contains read-only operations over the marketplace state.
// Query handlers bypass the domain model and read the database directly,
// implementing the read side of the CQRS architecture.
package queries

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single catalog product by identifier.
type GetProductQuery struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for one product.
func NewGetProductQuery(productID int64) (GetProductQuery, error) {
	if productID <= 0 {
		return GetProductQuery{}, errs.NewValueIsInvalidErrorWithCause("productID",
			fmt.Errorf("%d is not a valid product id", productID))
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the requested product identifier.
func (q GetProductQuery) ProductID() int64 {
	return q.productID
}

// GetProductQueryResponse represents catalog product information.
type GetProductQueryResponse struct {
	ID          int64
	Name        string
	Description string
	Price       int64
	SellerID    string
}

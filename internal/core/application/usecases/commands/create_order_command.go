package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a buyer's request to order a listed product.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(buyerID, productID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID   kernel.UUID
	productID int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to order a product.
// Validates that the buyer ID is valid and the product ID is positive.
func NewCreateOrderCommand(buyerID kernel.UUID, productID int64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setBuyerID(buyerID),
		orderCommand.setProductID(productID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// BuyerID returns the identifier of the ordering buyer.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ProductID returns the identifier of the ordered product.
func (c CreateOrderCommand) ProductID() int64 {
	return c.productID
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productID",
			fmt.Errorf("%d is not a valid product id", productID))
	}

	c.productID = productID
	return nil
}

package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/guard"
)

var ErrListProductCommandIsNotConstructed = errors.New(
	"ListProductCommand must be created via NewListProductCommand constructor",
)

// ListProductCommand represents a request to publish a new product on the
// marketplace catalog.
//
// Example:
//
//	cmd, err := NewListProductCommand(sellerID, "Mechanical keyboard", "Cherry MX switches", 12900)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewListProductCommandHandler(uowFactory)
//	productID, err := handler.Handle(ctx, cmd)
type ListProductCommand struct { //nolint:recvcheck //using for validation
	sellerID    kernel.UUID
	name        string
	description string
	price       int64

	guard guard.ConstructorGuard
}

// NewListProductCommand creates a command to publish a product.
// Validates that the seller ID is valid, the name is not empty, and the
// price is positive. The description may be empty.
func NewListProductCommand(sellerID kernel.UUID, name, description string, price int64) (ListProductCommand, error) {
	listCommand := ListProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listCommand.setSellerID(sellerID),
		listCommand.setName(name),
		listCommand.setPrice(price),
	); err != nil {
		return ListProductCommand{}, err
	}

	listCommand.description = description
	return listCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ListProductCommand) Validate() error {
	return c.guard.Validate(ErrListProductCommandIsNotConstructed)
}

// SellerID returns the identifier of the listing seller.
func (c ListProductCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Name returns the product name.
func (c ListProductCommand) Name() string {
	return c.name
}

// Description returns the optional product description.
func (c ListProductCommand) Description() string {
	return c.description
}

// Price returns the product price in minor currency units.
func (c ListProductCommand) Price() int64 {
	return c.price
}

func (c *ListProductCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}

func (c *ListProductCommand) setName(name string) error {
	if name == "" {
		return product.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *ListProductCommand) setPrice(price int64) error {
	if price <= 0 {
		return product.ErrPriceIsZero
	}

	c.price = price
	return nil
}

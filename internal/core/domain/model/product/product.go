package product

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrPriceIsZero is returned when listing is attempted with a
	// non-positive price.
	ErrPriceIsZero = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("price must be greater than 0"))

	// ErrNameIsRequired is returned when listing is attempted without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product represents a marketplace listing. Products are append-only: once
// listed they are never updated or deleted, and the seller recorded at
// listing time stays authoritative for every order referencing the product.
//
// Invariants:
//   - id is a sequential integer, 1 or greater
//   - name is non-empty
//   - price is strictly positive
//   - sellerID is a valid identity
type Product struct {
	// id is the sequential catalog identifier, assigned at listing time
	id int64

	// name is the listing title
	name string

	// description is free-form listing text, may be empty
	description string

	// price is the listing price in minor units
	price int64

	// sellerID is the identity of the listing actor
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProduct creates a new listing with validation. The id must come from the
// catalog's sequence so that ids stay strictly increasing by one per
// successful listing.
func NewProduct(id int64, name, description string, price int64, sellerID kernel.UUID) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDescription(description),
		p.setPrice(price),
		p.setSellerID(sellerID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a listing from persistence.
// The same invariants as NewProduct are enforced so corrupted rows do not
// leak into the domain.
func RestoreProduct(id int64, name, description string, price int64, sellerID kernel.UUID) (*Product, error) {
	return NewProduct(id, name, description, price, sellerID)
}

// Validate ensures the product was created through a factory method.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their catalog identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id == other.id
}

// ID returns the sequential catalog identifier.
func (p *Product) ID() int64 {
	return p.id
}

// Name returns the listing title.
func (p *Product) Name() string {
	return p.name
}

// Description returns the listing text.
func (p *Product) Description() string {
	return p.description
}

// Price returns the listing price in minor units.
func (p *Product) Price() int64 {
	return p.price
}

// Seller returns the identity that listed the product.
func (p *Product) Seller() kernel.UUID {
	return p.sellerID
}

func (p *Product) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid product id", id))
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	p.description = description
	return nil
}

func (p *Product) setPrice(price int64) error {
	if price <= 0 {
		return ErrPriceIsZero
	}
	p.price = price
	return nil
}

func (p *Product) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	p.sellerID = sellerID
	return nil
}

// Package productrepo provides data transfer objects and mapping functions
// for product persistence. It implements the repository pattern for the
// product aggregate, converting between domain entities and database rows.
package productrepo

import (
	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Identifiers are assigned by the repository, not the database,
// so the primary key carries no auto increment.
type ProductDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false"`
	Name        string    `gorm:"not null"`
	Description string
	Price       int64     `gorm:"not null"`
	SellerID    uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		SellerID:    aggregate.Seller().Bytes(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(dto.ID, dto.Name, dto.Description, dto.Price, sellerID)
}

// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Identifiers are assigned by the repository, not the database.
// ValidatorID and CourierID stay NULL until the corresponding lifecycle
// stage is reached.
type OrderDTO struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement:false"`
	ProductID           int64      `gorm:"not null;index"`
	BuyerID             uuid.UUID  `gorm:"type:uuid;index"`
	SellerID            uuid.UUID  `gorm:"type:uuid;index"`
	ValidatorID         *uuid.UUID `gorm:"type:uuid"`
	CourierID           *uuid.UUID `gorm:"type:uuid;index"`
	Status              int        `gorm:"index"`
	IsValidated         bool
	CompletionRequested bool
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var validatorID *uuid.UUID
	if id := aggregate.ValidatorID(); id != nil {
		raw := id.Bytes()
		validatorID = &raw
	}

	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:                  aggregate.ID(),
		ProductID:           aggregate.ProductID(),
		BuyerID:             aggregate.Buyer().Bytes(),
		SellerID:            aggregate.Seller().Bytes(),
		ValidatorID:         validatorID,
		CourierID:           courierID,
		Status:              int(aggregate.Status()),
		IsValidated:         aggregate.IsValidated(),
		CompletionRequested: aggregate.CompletionRequested(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var validatorID *kernel.UUID
	if dto.ValidatorID != nil {
		vID, validatorErr := kernel.UUIDFromBytes((*dto.ValidatorID)[:])
		if validatorErr != nil {
			return nil, validatorErr
		}

		validatorID = &vID
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	return order.RestoreOrder(
		dto.ID,
		dto.ProductID,
		buyerID,
		sellerID,
		validatorID,
		courierID,
		dto.IsValidated,
		dto.CompletionRequested,
		order.Status(dto.Status),
	)
}

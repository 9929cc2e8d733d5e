// Package orderrepo provides data transfer objects and mapping functions for
// order persistence.
package orderrepo

import (
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// TotalPrice is stored as written at order creation and never recomputed.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ListingID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	BuyerID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	BuyerName     string          `gorm:"not null"`
	BuyerLocation string          `gorm:"not null"`
	Quantity      int             `gorm:"not null"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric;not null"`
	Status        int             `gorm:"index;not null"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		ListingID:     aggregate.ListingID().Bytes(),
		BuyerID:       aggregate.BuyerID().Bytes(),
		BuyerName:     aggregate.BuyerName(),
		BuyerLocation: aggregate.BuyerLocation(),
		Quantity:      aggregate.Quantity(),
		TotalPrice:    aggregate.TotalPrice().Decimal(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, listingID, buyerID, dto.BuyerName, dto.BuyerLocation,
		dto.Quantity, totalPrice, order.Status(dto.Status), dto.CreatedAt,
	)
}

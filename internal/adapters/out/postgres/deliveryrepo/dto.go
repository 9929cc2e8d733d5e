// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	"time"

	"agrilink/internal/core/domain/model/delivery"
	"agrilink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Party names, locations, and the product display name are
// denormalized snapshots taken at purchase time.
type DeliveryDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	FarmerID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	FarmerName     string     `gorm:"not null"`
	FarmerLocation string     `gorm:"not null"`
	BuyerID        uuid.UUID  `gorm:"type:uuid;index;not null"`
	BuyerName      string     `gorm:"not null"`
	BuyerLocation  string     `gorm:"not null"`
	ProductName    string     // may be empty on catalog misses
	Quantity       int        `gorm:"not null"`
	Status         int        `gorm:"index;not null"`
	CreatedAt      time.Time  `gorm:"not null"`
	DeliveredAt    *time.Time `gorm:""`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		FarmerID:       aggregate.FarmerID().Bytes(),
		FarmerName:     aggregate.FarmerName(),
		FarmerLocation: aggregate.FarmerLocation(),
		BuyerID:        aggregate.BuyerID().Bytes(),
		BuyerName:      aggregate.BuyerName(),
		BuyerLocation:  aggregate.BuyerLocation(),
		ProductName:    aggregate.ProductName(),
		Quantity:       aggregate.Quantity(),
		Status:         int(aggregate.Status()),
		CreatedAt:      aggregate.CreatedAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, orderID,
		farmerID, dto.FarmerName, dto.FarmerLocation,
		buyerID, dto.BuyerName, dto.BuyerLocation,
		dto.ProductName, dto.Quantity,
		delivery.Status(dto.Status), dto.CreatedAt, dto.DeliveredAt,
	)
}

// Package listingrepo provides data transfer objects and mapping functions for
// listing persistence.
package listingrepo

import (
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/listing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingDTO represents the database structure for persisting listing
// aggregates. Farmer name and location are denormalized snapshots, stored as
// plain columns rather than joined from the farmers table.
type ListingDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID      string          `gorm:"not null"`
	FarmerID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	FarmerName     string          `gorm:"not null"`
	FarmerLocation string          `gorm:"not null"`
	Quantity       int             `gorm:"not null"`
	PricePerUnit   decimal.Decimal `gorm:"type:numeric;not null"`
	Status         int             `gorm:"index;not null"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for listing entities.
func (ListingDTO) TableName() string {
	return "listings"
}

// fromDomain converts a listing domain aggregate to its database representation.
func fromDomain(aggregate *listing.Listing) ListingDTO {
	return ListingDTO{
		ID:             aggregate.ID().Bytes(),
		ProductID:      aggregate.ProductID(),
		FarmerID:       aggregate.FarmerID().Bytes(),
		FarmerName:     aggregate.FarmerName(),
		FarmerLocation: aggregate.FarmerLocation(),
		Quantity:       aggregate.Quantity(),
		PricePerUnit:   aggregate.PricePerUnit().Decimal(),
		Status:         int(aggregate.Status()),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a listing domain aggregate.
func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	pricePerUnit, err := kernel.NewMoney(dto.PricePerUnit)
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(
		id, dto.ProductID, farmerID, dto.FarmerName, dto.FarmerLocation,
		dto.Quantity, pricePerUnit, listing.Status(dto.Status), dto.CreatedAt,
	)
}

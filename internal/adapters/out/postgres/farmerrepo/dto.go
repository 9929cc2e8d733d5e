// Package farmerrepo provides data transfer objects and mapping functions for
// farmer persistence. It implements the repository pattern for the farmer
// domain aggregate, handling the conversion between domain entities and
// database representations.
package farmerrepo

import (
	"agrilink/internal/core/domain/model/farmer"
	"agrilink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FarmerDTO represents the database structure for persisting farmer aggregates.
// Monetary columns are numeric to keep balance arithmetic exact.
type FarmerDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"not null"`
	Location  string          `gorm:"not null"`
	PIN       string          `gorm:"column:pin;not null;uniqueIndex"`
	Balance   decimal.Decimal `gorm:"type:numeric;not null"`
	TotalSold decimal.Decimal `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for farmer entities.
func (FarmerDTO) TableName() string {
	return "farmers"
}

// fromDomain converts a farmer domain aggregate to its database representation.
func fromDomain(aggregate *farmer.Farmer) FarmerDTO {
	return FarmerDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Location:  aggregate.Location(),
		PIN:       aggregate.PIN(),
		Balance:   aggregate.Balance().Decimal(),
		TotalSold: aggregate.TotalSold().Decimal(),
	}
}

// toDomain converts a database DTO to a farmer domain aggregate.
func toDomain(dto FarmerDTO) (*farmer.Farmer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	totalSold, err := kernel.NewMoney(dto.TotalSold)
	if err != nil {
		return nil, err
	}

	return farmer.RestoreFarmer(id, dto.Name, dto.Location, dto.PIN, balance, totalSold)
}

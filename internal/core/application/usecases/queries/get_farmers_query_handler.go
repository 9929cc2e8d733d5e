package queries

import (
	"context"

	"agrilink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetFarmersQueryHandler retrieves farmer accounts from the database.
type GetFarmersQueryHandler struct {
	db *gorm.DB
}

// NewGetFarmersQueryHandler creates a handler for farmer queries.
func NewGetFarmersQueryHandler(db *gorm.DB) GetFarmersQueryHandler {
	return GetFarmersQueryHandler{db: db}
}

// Handle executes the query to retrieve all farmers, sorted by name.
func (h GetFarmersQueryHandler) Handle(
	ctx context.Context,
	query GetFarmersQuery,
) ([]GetFarmersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	farmers := make([]GetFarmersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			location,
			balance,
			total_sold
		FROM farmers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name, location string
		var balance, totalSold decimal.Decimal

		if err = rows.Scan(&id, &name, &location, &balance, &totalSold); err != nil {
			return nil, err
		}

		farmerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		balanceMoney, moneyErr := kernel.NewMoney(balance)
		if moneyErr != nil {
			return nil, moneyErr
		}
		totalSoldMoney, moneyErr := kernel.NewMoney(totalSold)
		if moneyErr != nil {
			return nil, moneyErr
		}

		farmers = append(farmers, GetFarmersQueryResponse{
			ID:        farmerID,
			Name:      name,
			Location:  location,
			Balance:   balanceMoney,
			TotalSold: totalSoldMoney,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return farmers, nil
}

package queries

import (
	"context"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/listing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetListingsQueryHandler retrieves listings from the database.
type GetListingsQueryHandler struct {
	db *gorm.DB
}

// NewGetListingsQueryHandler creates a handler for listing queries.
func NewGetListingsQueryHandler(db *gorm.DB) GetListingsQueryHandler {
	return GetListingsQueryHandler{db: db}
}

// Handle executes the query to retrieve all listings, newest first.
func (h GetListingsQueryHandler) Handle(
	ctx context.Context,
	query GetListingsQuery,
) ([]GetListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listings := make([]GetListingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			farmer_id,
			farmer_name,
			farmer_location,
			quantity,
			price_per_unit,
			status,
			created_at
		FROM listings
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, farmerID uuid.UUID
		var productID, farmerName, farmerLocation string
		var quantity, status int
		var pricePerUnit decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id, &productID, &farmerID, &farmerName, &farmerLocation,
			&quantity, &pricePerUnit, &status, &createdAt,
		)
		if err != nil {
			return nil, err
		}

		listingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		sellerID, idErr := kernel.UUIDFromBytes(farmerID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, moneyErr := kernel.NewMoney(pricePerUnit)
		if moneyErr != nil {
			return nil, moneyErr
		}

		listings = append(listings, GetListingsQueryResponse{
			ID:             listingID,
			ProductID:      productID,
			FarmerID:       sellerID,
			FarmerName:     farmerName,
			FarmerLocation: farmerLocation,
			Quantity:       quantity,
			PricePerUnit:   price,
			Status:         listing.Status(status),
			CreatedAt:      createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}

package queries

import (
	"context"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves orders from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			listing_id,
			buyer_id,
			buyer_name,
			buyer_location,
			quantity,
			total_price,
			status,
			created_at
		FROM orders
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, listingID, buyerID uuid.UUID
		var buyerName, buyerLocation string
		var quantity, status int
		var totalPrice decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id, &listingID, &buyerID, &buyerName, &buyerLocation,
			&quantity, &totalPrice, &status, &createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		sourceListingID, idErr := kernel.UUIDFromBytes(listingID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderBuyerID, idErr := kernel.UUIDFromBytes(buyerID[:])
		if idErr != nil {
			return nil, idErr
		}
		total, moneyErr := kernel.NewMoney(totalPrice)
		if moneyErr != nil {
			return nil, moneyErr
		}

		orders = append(orders, GetOrdersQueryResponse{
			ID:            orderID,
			ListingID:     sourceListingID,
			BuyerID:       orderBuyerID,
			BuyerName:     buyerName,
			BuyerLocation: buyerLocation,
			Quantity:      quantity,
			TotalPrice:    total,
			Status:        order.Status(status),
			CreatedAt:     createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

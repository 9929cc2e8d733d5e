package queries

import (
	"context"
	"time"

	"agrilink/internal/core/domain/model/delivery"
	"agrilink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler retrieves deliveries from the database.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery queries.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all deliveries, newest first.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			farmer_id,
			farmer_name,
			farmer_location,
			buyer_id,
			buyer_name,
			buyer_location,
			product_name,
			quantity,
			status,
			created_at,
			delivered_at
		FROM deliveries
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID, farmerID, buyerID uuid.UUID
		var farmerName, farmerLocation, buyerName, buyerLocation, productName string
		var quantity, status int
		var createdAt time.Time
		var deliveredAt *time.Time

		err = rows.Scan(
			&id, &orderID, &farmerID, &farmerName, &farmerLocation,
			&buyerID, &buyerName, &buyerLocation, &productName,
			&quantity, &status, &createdAt, &deliveredAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		pairedOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		sellerID, idErr := kernel.UUIDFromBytes(farmerID[:])
		if idErr != nil {
			return nil, idErr
		}
		recipientID, idErr := kernel.UUIDFromBytes(buyerID[:])
		if idErr != nil {
			return nil, idErr
		}

		deliveries = append(deliveries, GetDeliveriesQueryResponse{
			ID:             deliveryID,
			OrderID:        pairedOrderID,
			FarmerID:       sellerID,
			FarmerName:     farmerName,
			FarmerLocation: farmerLocation,
			BuyerID:        recipientID,
			BuyerName:      buyerName,
			BuyerLocation:  buyerLocation,
			ProductName:    productName,
			Quantity:       quantity,
			Status:         delivery.Status(status),
			CreatedAt:      createdAt,
			DeliveredAt:    deliveredAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

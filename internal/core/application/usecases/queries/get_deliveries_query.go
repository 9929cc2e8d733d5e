package queries

import (
	"errors"
	"time"

	"agrilink/internal/core/domain/model/delivery"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery retrieves all deliveries.
type GetDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a query to retrieve all deliveries.
func NewGetDeliveriesQuery() GetDeliveriesQuery {
	return GetDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveriesQueryIsNotConstructed if validation fails.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// GetDeliveriesQueryResponse represents one delivery with its party snapshots.
// DeliveredAt is nil until the delivery has been confirmed.
type GetDeliveriesQueryResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	FarmerID       kernel.UUID
	FarmerName     string
	FarmerLocation string
	BuyerID        kernel.UUID
	BuyerName      string
	BuyerLocation  string
	ProductName    string
	Quantity       int
	Status         delivery.Status
	CreatedAt      time.Time
	DeliveredAt    *time.Time
}

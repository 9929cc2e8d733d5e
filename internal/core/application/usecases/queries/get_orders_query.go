package queries

import (
	"errors"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/order"
	"agrilink/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves all orders.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse represents one order with its locked total price.
type GetOrdersQueryResponse struct {
	ID            kernel.UUID
	ListingID     kernel.UUID
	BuyerID       kernel.UUID
	BuyerName     string
	BuyerLocation string
	Quantity      int
	TotalPrice    kernel.Money
	Status        order.Status
	CreatedAt     time.Time
}

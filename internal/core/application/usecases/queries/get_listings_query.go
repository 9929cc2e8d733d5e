package queries

import (
	"errors"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/listing"
	"agrilink/internal/pkg/guard"
)

var ErrGetListingsQueryIsNotConstructed = errors.New(
	"GetListingsQuery must be created via NewGetListingsQuery constructor",
)

// GetListingsQuery retrieves all listings, including sold-out ones.
type GetListingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetListingsQuery creates a query to retrieve all listings.
func NewGetListingsQuery() GetListingsQuery {
	return GetListingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetListingsQueryIsNotConstructed if validation fails.
func (q GetListingsQuery) Validate() error {
	return q.guard.Validate(ErrGetListingsQueryIsNotConstructed)
}

// GetListingsQueryResponse represents one listing with its farmer snapshot.
type GetListingsQueryResponse struct {
	ID             kernel.UUID
	ProductID      string
	FarmerID       kernel.UUID
	FarmerName     string
	FarmerLocation string
	Quantity       int
	PricePerUnit   kernel.Money
	Status         listing.Status
	CreatedAt      time.Time
}

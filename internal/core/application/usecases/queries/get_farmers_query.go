package queries

import (
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var ErrGetFarmersQueryIsNotConstructed = errors.New(
	"GetFarmersQuery must be created via NewGetFarmersQuery constructor",
)

// GetFarmersQuery retrieves all registered farmers.
type GetFarmersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFarmersQuery creates a query to retrieve all farmers.
func NewGetFarmersQuery() GetFarmersQuery {
	return GetFarmersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFarmersQueryIsNotConstructed if validation fails.
func (q GetFarmersQuery) Validate() error {
	return q.guard.Validate(ErrGetFarmersQueryIsNotConstructed)
}

// GetFarmersQueryResponse represents farmer account information.
// The PIN is deliberately absent; it never leaves the write side.
type GetFarmersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Location  string
	Balance   kernel.Money
	TotalSold kernel.Money
}

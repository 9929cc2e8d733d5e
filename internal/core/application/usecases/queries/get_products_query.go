// Package queries contains read-only operations returning flat response
// structs. Query handlers read committed state only: they run raw SQL on the
// main connection, never inside a command's transaction.
package queries

import (
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the static produce catalog.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to retrieve the catalog.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductsQueryIsNotConstructed if validation fails.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse represents one catalog product.
type GetProductsQueryResponse struct {
	ID          string
	NameLocal   string
	NameDisplay string
	Image       string
	AvgPrice    kernel.Money
	Unit        string
}

package queries

import (
	"context"

	"agrilink/internal/core/domain/model/product"
)

// GetProductsQueryHandler serves the static produce catalog. The catalog
// lives in-process, so no database round trip is involved.
type GetProductsQueryHandler struct{}

// NewGetProductsQueryHandler creates a handler for catalog queries.
func NewGetProductsQueryHandler() GetProductsQueryHandler {
	return GetProductsQueryHandler{}
}

// Handle returns every catalog product in catalog order.
func (h GetProductsQueryHandler) Handle(
	_ context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog := product.Catalog()
	products := make([]GetProductsQueryResponse, 0, len(catalog))
	for _, p := range catalog {
		products = append(products, GetProductsQueryResponse{
			ID:          p.ID,
			NameLocal:   p.NameLocal,
			NameDisplay: p.NameDisplay,
			Image:       p.Image,
			AvgPrice:    p.AvgPrice,
			Unit:        p.Unit,
		})
	}

	return products, nil
}

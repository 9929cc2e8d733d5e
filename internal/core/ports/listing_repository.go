package ports

import (
	"context"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for listing aggregates.
type ListingRepository interface {
	// Add persists a new listing aggregate to storage.
	Add(ctx context.Context, aggregate *listing.Listing) error

	// Update persists changes to an existing listing aggregate.
	Update(ctx context.Context, aggregate *listing.Listing) error

	// Get retrieves a listing aggregate by its unique identifier.
	// Returns ObjectNotFoundError when the listing does not exist.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)
}

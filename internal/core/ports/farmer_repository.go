// Package ports defines repository and session contracts for the marketplace
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"agrilink/internal/core/domain/model/farmer"
	"agrilink/internal/core/domain/model/kernel"
)

// FarmerRepository defines the persistence contract for farmer aggregates.
type FarmerRepository interface {
	// Add persists a new farmer aggregate to storage.
	Add(ctx context.Context, aggregate *farmer.Farmer) error

	// Update persists changes to an existing farmer aggregate.
	Update(ctx context.Context, aggregate *farmer.Farmer) error

	// Get retrieves a farmer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*farmer.Farmer, error)

	// GetByPIN retrieves the farmer whose PIN exactly matches the given one.
	// Used by the login flow; returns ObjectNotFoundError when no farmer
	// carries the PIN.
	GetByPIN(ctx context.Context, pin string) (*farmer.Farmer, error)

	// Count returns the number of stored farmers. Used by startup seeding to
	// stay idempotent.
	Count(ctx context.Context) (int64, error)
}

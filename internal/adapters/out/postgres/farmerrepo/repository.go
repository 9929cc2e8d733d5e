package farmerrepo

import (
	"context"
	"errors"

	"agrilink/internal/core/domain/model/farmer"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFarmerRepository implements FarmerRepository using GORM.
type GormFarmerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFarmerRepository creates a new GORM farmer repository.
func NewGormFarmerRepository(db *gorm.DB, tracker aggregateTracker) *GormFarmerRepository {
	return &GormFarmerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new farmer to the database.
func (r *GormFarmerRepository) Add(ctx context.Context, aggregate *farmer.Farmer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing farmer to the database.
func (r *GormFarmerRepository) Update(ctx context.Context, aggregate *farmer.Farmer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&FarmerDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("farmer", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a farmer by ID.
func (r *GormFarmerRepository) Get(ctx context.Context, id kernel.UUID) (*farmer.Farmer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FarmerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("farmer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPIN retrieves the farmer with an exactly matching PIN.
func (r *GormFarmerRepository) GetByPIN(ctx context.Context, pin string) (*farmer.Farmer, error) {
	var dto FarmerDTO
	if err := r.db.WithContext(ctx).First(&dto, "pin = ?", pin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("farmer", "by pin")
		}
		return nil, err
	}

	return toDomain(dto)
}

// Count returns the number of stored farmers.
func (r *GormFarmerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&FarmerDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

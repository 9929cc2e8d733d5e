package auditrepo

import (
	"context"

	"agrilink/internal/core/domain/model/audit"
	"agrilink/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAuditLogRepository implements AuditLogRepository using GORM.
// Retention is the maximum number of entries kept; Append enforces it so the
// stored log never grows past the limit between sweeps.
type GormAuditLogRepository struct {
	db        *gorm.DB
	tracker   aggregateTracker
	retention int
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAuditLogRepository creates a new GORM audit log repository with the
// given retention limit.
func NewGormAuditLogRepository(db *gorm.DB, tracker aggregateTracker, retention int) *GormAuditLogRepository {
	return &GormAuditLogRepository{
		db:        db,
		tracker:   tracker,
		retention: retention,
	}
}

// Append saves a new audit entry and drops the oldest entries beyond the
// retention limit in the same statement batch.
func (r *GormAuditLogRepository) Append(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if _, err := r.trim(ctx); err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// TrimToRetention removes entries beyond the retention limit without appending.
func (r *GormAuditLogRepository) TrimToRetention(ctx context.Context) (int64, error) {
	return r.trim(ctx)
}

func (r *GormAuditLogRepository) trim(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM audit_logs
		WHERE id NOT IN (
			SELECT id FROM audit_logs
			ORDER BY recorded_at DESC, id DESC
			LIMIT ?
		)
	`, r.retention)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

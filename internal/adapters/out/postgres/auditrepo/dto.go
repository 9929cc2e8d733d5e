// Package auditrepo provides data transfer objects and mapping functions for
// audit log persistence. The audit log is append-only and bounded: inserts
// trim the oldest rows beyond the retention limit in the same transaction.
package auditrepo

import (
	"time"

	"agrilink/internal/core/domain/model/audit"
	"agrilink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AuditLogDTO represents the database structure for persisting audit entries.
type AuditLogDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action     string    `gorm:"not null"`
	Details    string    `gorm:"not null"`
	RecordedAt time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for audit entries.
func (AuditLogDTO) TableName() string {
	return "audit_logs"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry *audit.Entry) AuditLogDTO {
	return AuditLogDTO{
		ID:         entry.ID().Bytes(),
		Action:     entry.Action(),
		Details:    entry.Details(),
		RecordedAt: entry.RecordedAt(),
	}
}

// toDomain converts a database DTO to an audit entry.
func toDomain(dto AuditLogDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(id, dto.Action, dto.Details, dto.RecordedAt)
}

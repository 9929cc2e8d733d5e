package ports

import (
	"context"

	"agrilink/internal/core/domain/model/audit"
)

// AuditLogRepository defines the persistence contract for audit entries.
//
// The log is append-only and bounded: Append trims the stored log down to the
// configured retention in the same transaction, so readers never observe more
// than the most recent entries.
type AuditLogRepository interface {
	// Append persists a new audit entry and trims entries beyond the retention
	// limit, oldest first.
	Append(ctx context.Context, entry *audit.Entry) error

	// TrimToRetention removes entries beyond the retention limit without
	// appending. Used by the background retention sweep.
	TrimToRetention(ctx context.Context) (int64, error)
}

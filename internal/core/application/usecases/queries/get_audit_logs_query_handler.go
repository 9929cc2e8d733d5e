package queries

import (
	"context"
	"time"

	"agrilink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAuditLogsQueryHandler retrieves audit entries from the database.
// The limit matches the retention cap, so readers never see more entries than
// the log retains even between trim runs.
type GetAuditLogsQueryHandler struct {
	db    *gorm.DB
	limit int
}

// NewGetAuditLogsQueryHandler creates a handler for audit log queries with the
// given retention limit.
func NewGetAuditLogsQueryHandler(db *gorm.DB, limit int) GetAuditLogsQueryHandler {
	return GetAuditLogsQueryHandler{db: db, limit: limit}
}

// Handle executes the query to retrieve the retained audit log, newest first.
func (h GetAuditLogsQueryHandler) Handle(
	ctx context.Context,
	query GetAuditLogsQuery,
) ([]GetAuditLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetAuditLogsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			action,
			details,
			recorded_at
		FROM audit_logs
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?
	`, h.limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var action, details string
		var recordedAt time.Time

		if err = rows.Scan(&id, &action, &details, &recordedAt); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		entries = append(entries, GetAuditLogsQueryResponse{
			ID:         entryID,
			Action:     action,
			Details:    details,
			RecordedAt: recordedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

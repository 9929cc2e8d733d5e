package queries

import (
	"errors"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var ErrGetAuditLogsQueryIsNotConstructed = errors.New(
	"GetAuditLogsQuery must be created via NewGetAuditLogsQuery constructor",
)

// GetAuditLogsQuery retrieves the retained audit log, newest first.
type GetAuditLogsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAuditLogsQuery creates a query to retrieve the audit log.
func NewGetAuditLogsQuery() GetAuditLogsQuery {
	return GetAuditLogsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAuditLogsQueryIsNotConstructed if validation fails.
func (q GetAuditLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditLogsQueryIsNotConstructed)
}

// GetAuditLogsQueryResponse represents one audit entry.
type GetAuditLogsQueryResponse struct {
	ID         kernel.UUID
	Action     string
	Details    string
	RecordedAt time.Time
}

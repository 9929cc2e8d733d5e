package ports

import (
	"time"

	"agrilink/internal/core/domain/model/kernel"
)

// Session is an active farmer login, addressed by an opaque token that the
// caller presents on subsequent requests.
type Session struct {
	Token      string
	FarmerID   kernel.UUID
	FarmerName string
	ExpiresAt  time.Time
}

// SessionStore holds active farmer sessions. Sessions live for the configured
// TTL and are not persisted across process restarts.
type SessionStore interface {
	// Start creates a session for the farmer and returns it with a fresh token.
	Start(farmerID kernel.UUID, farmerName string) Session

	// Resolve returns the session for the token. The second return value is
	// false when the token is unknown or the session has expired.
	Resolve(token string) (Session, bool)

	// End removes the session for the token and returns it. The second return
	// value is false when no live session existed, making logout idempotent.
	End(token string) (Session, bool)

	// Sweep removes expired sessions and returns how many were dropped.
	Sweep() int
}

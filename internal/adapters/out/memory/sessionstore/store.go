// Package sessionstore provides the in-memory SessionStore implementation.
// Sessions are process-local and lost on restart; tokens are random UUIDs and
// every session expires after the configured TTL.
package sessionstore

import (
	"sync"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/ports"

	"github.com/google/uuid"
)

// Store handles active farmer sessions.
type Store struct {
	sessions map[string]ports.Session
	ttl      time.Duration
	mu       sync.RWMutex
}

// NewStore creates a session store with the given session TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]ports.Session),
		ttl:      ttl,
	}
}

// Start creates a session for the farmer and returns it with a fresh token.
func (s *Store) Start(farmerID kernel.UUID, farmerName string) ports.Session {
	session := ports.Session{
		Token:      uuid.NewString(),
		FarmerID:   farmerID,
		FarmerName: farmerName,
		ExpiresAt:  time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return session
}

// Resolve returns the live session for the token. Expired sessions resolve as
// absent and are dropped lazily.
func (s *Store) Resolve(token string) (ports.Session, bool) {
	s.mu.RLock()
	session, exists := s.sessions[token]
	s.mu.RUnlock()

	if !exists {
		return ports.Session{}, false
	}
	if time.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return ports.Session{}, false
	}

	return session, true
}

// End removes the session for the token and returns it. Returns false when no
// live session existed.
func (s *Store) End(token string) (ports.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[token]
	if !exists {
		return ports.Session{}, false
	}
	delete(s.sessions, token)

	if time.Now().After(session.ExpiresAt) {
		return ports.Session{}, false
	}
	return session, true
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
			dropped++
		}
	}
	return dropped
}

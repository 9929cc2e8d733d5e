// Package audit contains the audit log Entry: an append-only, human-readable
// record of every state-mutating operation. The log is bounded; only the most
// recent entries are retained.
package audit

import (
	"errors"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through the NewEntry or RestoreEntry factory methods.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is a single audit record. Entries are immutable once created.
type Entry struct {
	id         kernel.UUID
	action     string
	details    string
	recordedAt time.Time

	isConstructed bool
}

// NewEntry creates an audit Entry. Action is a short label ("New Order");
// details is the free-form description. Details may be empty.
func NewEntry(id kernel.UUID, action, details string, recordedAt time.Time) (*Entry, error) {
	return RestoreEntry(id, action, details, recordedAt)
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(id kernel.UUID, action, details string, recordedAt time.Time) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if action == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}

	return &Entry{
		id:            id,
		action:        action,
		details:       details,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Action returns the short operation label.
func (e *Entry) Action() string {
	return e.action
}

// Details returns the free-form description.
func (e *Entry) Details() string {
	return e.details
}

// RecordedAt returns the timestamp the entry was recorded.
func (e *Entry) RecordedAt() time.Time {
	return e.recordedAt
}

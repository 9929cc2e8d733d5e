package audit_test

import (
	"testing"
	"time"

	"agrilink/internal/core/domain/model/audit"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("should create entry", func(t *testing.T) {
		at := time.Now().UTC()

		e, err := audit.NewEntry(kernel.NewUUID(), "New Order", "20 quintal of Teff ordered by Ethio Foods Ltd", at)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, "New Order", e.Action())
		assert.Equal(t, "20 quintal of Teff ordered by Ethio Foods Ltd", e.Details())
		assert.Equal(t, at, e.RecordedAt())
	})

	t.Run("should tolerate empty details", func(t *testing.T) {
		e, err := audit.NewEntry(kernel.NewUUID(), "Farmer Logout", "", time.Now().UTC())

		require.NoError(t, err)
		assert.Empty(t, e.Details())
	})

	t.Run("should fail with empty action", func(t *testing.T) {
		_, err := audit.NewEntry(kernel.NewUUID(), "", "details", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		_, err := audit.NewEntry(kernel.UUID{}, "Farmer Login", "", time.Now().UTC())

		require.Error(t, err)
	})
}

func TestEntry_Validate(t *testing.T) {
	t.Run("should fail validation for nil entry", func(t *testing.T) {
		var e *audit.Entry

		err := e.Validate()

		require.Error(t, err)
		assert.Equal(t, audit.ErrEntryIsNotConstructed, err)
	})
}

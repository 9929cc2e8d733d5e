package listing_test

import (
	"testing"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/listing"
	"agrilink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPrice(t *testing.T) kernel.Money {
	t.Helper()
	price, err := kernel.NewMoneyFromInt(4600)
	require.NoError(t, err)
	return price
}

func newTestListing(t *testing.T, quantity int) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(
		kernel.NewUUID(), "1", kernel.NewUUID(),
		"Abebe Gebre", "Debre Birhan",
		quantity, validPrice(t), time.Now().UTC(),
	)
	require.NoError(t, err)
	return l
}

func TestNewListing(t *testing.T) {
	t.Run("should create available listing", func(t *testing.T) {
		l := newTestListing(t, 50)

		require.NoError(t, l.Validate())
		assert.Equal(t, 50, l.Quantity())
		assert.Equal(t, listing.Available, l.Status())
		assert.Equal(t, "1", l.ProductID())
		assert.Equal(t, "Abebe Gebre", l.FarmerName())
		assert.Equal(t, "Debre Birhan", l.FarmerLocation())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := listing.NewListing(
			kernel.NewUUID(), "1", kernel.NewUUID(),
			"Abebe Gebre", "Debre Birhan",
			0, validPrice(t), time.Now().UTC(),
		)

		require.Error(t, err)
	})

	t.Run("should fail with zero price", func(t *testing.T) {
		_, err := listing.NewListing(
			kernel.NewUUID(), "1", kernel.NewUUID(),
			"Abebe Gebre", "Debre Birhan",
			50, kernel.ZeroMoney(), time.Now().UTC(),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pricePerUnit")
	})

	t.Run("should fail with missing farmer snapshot", func(t *testing.T) {
		_, err := listing.NewListing(
			kernel.NewUUID(), "1", kernel.NewUUID(),
			"", "",
			50, validPrice(t), time.Now().UTC(),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "farmerName")
		assert.Contains(t, err.Error(), "farmerLocation")
	})
}

func TestRestoreListing(t *testing.T) {
	t.Run("should restore sold listing with zero quantity", func(t *testing.T) {
		l, err := listing.RestoreListing(
			kernel.NewUUID(), "1", kernel.NewUUID(),
			"Abebe Gebre", "Debre Birhan",
			0, validPrice(t), listing.Sold, time.Now().UTC(),
		)

		require.NoError(t, err)
		assert.Equal(t, listing.Sold, l.Status())
		assert.Equal(t, 0, l.Quantity())
	})

	t.Run("should reject empty listing that is not sold", func(t *testing.T) {
		_, err := listing.RestoreListing(
			kernel.NewUUID(), "1", kernel.NewUUID(),
			"Abebe Gebre", "Debre Birhan",
			0, validPrice(t), listing.Available, time.Now().UTC(),
		)

		require.Error(t, err)
	})

	t.Run("should reject sold listing with remaining quantity", func(t *testing.T) {
		_, err := listing.RestoreListing(
			kernel.NewUUID(), "1", kernel.NewUUID(),
			"Abebe Gebre", "Debre Birhan",
			10, validPrice(t), listing.Sold, time.Now().UTC(),
		)

		require.Error(t, err)
	})
}

func TestListing_Reduce(t *testing.T) {
	t.Run("partial purchase keeps listing available", func(t *testing.T) {
		l := newTestListing(t, 50)

		require.NoError(t, l.Reduce(20))

		assert.Equal(t, 30, l.Quantity())
		assert.Equal(t, listing.Available, l.Status())
	})

	t.Run("exhausting the quantity flips status to sold", func(t *testing.T) {
		l := newTestListing(t, 50)

		require.NoError(t, l.Reduce(50))

		assert.Equal(t, 0, l.Quantity())
		assert.Equal(t, listing.Sold, l.Status())
	})

	t.Run("rejects zero and negative quantity", func(t *testing.T) {
		l := newTestListing(t, 50)

		require.ErrorIs(t, l.Reduce(0), errs.ErrValueIsInvalid)
		require.ErrorIs(t, l.Reduce(-5), errs.ErrValueIsInvalid)
		assert.Equal(t, 50, l.Quantity())
	})

	t.Run("rejects a quantity larger than the remainder", func(t *testing.T) {
		l := newTestListing(t, 50)

		err := l.Reduce(51)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 50, l.Quantity())
		assert.Equal(t, listing.Available, l.Status())
	})

	t.Run("sold listing rejects further purchases", func(t *testing.T) {
		l := newTestListing(t, 10)
		require.NoError(t, l.Reduce(10))

		err := l.Reduce(1)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, listing.Sold, l.Status())
	})
}

func TestListingStatus(t *testing.T) {
	t.Run("string representations", func(t *testing.T) {
		assert.Equal(t, "Available", listing.Available.String())
		assert.Equal(t, "Pending", listing.Pending.String())
		assert.Equal(t, "Sold", listing.Sold.String())
		assert.Equal(t, "Unknown", listing.Unknown.String())
		assert.Equal(t, "Unknown", listing.Status(42).String())
	})

	t.Run("validation", func(t *testing.T) {
		require.NoError(t, listing.Available.Validate())
		require.NoError(t, listing.Pending.Validate())
		require.NoError(t, listing.Sold.Validate())
		require.Error(t, listing.Unknown.Validate())
		require.Error(t, listing.Status(42).Validate())
	})

	t.Run("only sold is terminal", func(t *testing.T) {
		assert.True(t, listing.Sold.IsTerminal())
		assert.False(t, listing.Available.IsTerminal())
		assert.False(t, listing.Pending.IsTerminal())
	})
}

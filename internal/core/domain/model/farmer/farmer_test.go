package farmer_test

import (
	"testing"

	"agrilink/internal/core/domain/model/farmer"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFarmer(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create farmer with zero balance", func(t *testing.T) {
		f, err := farmer.NewFarmer(validID, "Abebe Gebre", "Debre Birhan", "1234")

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.True(t, f.ID().IsEqual(validID))
		assert.Equal(t, "Abebe Gebre", f.Name())
		assert.Equal(t, "Debre Birhan", f.Location())
		assert.True(t, f.Balance().IsZero())
		assert.True(t, f.TotalSold().IsZero())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		f, err := farmer.NewFarmer(invalidID, "Abebe Gebre", "Debre Birhan", "1234")

		require.Error(t, err)
		assert.Nil(t, f)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		f, err := farmer.NewFarmer(validID, "", "Debre Birhan", "1234")

		require.Error(t, err)
		assert.Nil(t, f)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with wrong PIN length", func(t *testing.T) {
		for _, pin := range []string{"", "123", "12345", "አበገ"} {
			f, err := farmer.NewFarmer(validID, "Abebe Gebre", "Debre Birhan", pin)

			require.Error(t, err)
			assert.Nil(t, f)
			assert.Contains(t, err.Error(), "pin must be exactly 4 characters")
		}
	})

	t.Run("should count PIN length in characters, not bytes", func(t *testing.T) {
		f, err := farmer.NewFarmer(validID, "Abebe Gebre", "Debre Birhan", "አበበገ")

		require.NoError(t, err)
		assert.Equal(t, "አበበገ", f.PIN())
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		f, err := farmer.NewFarmer(invalidID, "", "", "12")

		require.Error(t, err)
		assert.Nil(t, f)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "location")
		assert.Contains(t, err.Error(), "pin")
	})
}

func TestRestoreFarmer(t *testing.T) {
	t.Run("should restore balance and lifetime total", func(t *testing.T) {
		balance, _ := kernel.NewMoneyFromInt(15000)
		totalSold, _ := kernel.NewMoneyFromInt(45000)

		f, err := farmer.RestoreFarmer(kernel.NewUUID(), "Abebe Gebre", "Debre Birhan", "1234", balance, totalSold)

		require.NoError(t, err)
		assert.True(t, f.Balance().IsEqual(balance))
		assert.True(t, f.TotalSold().IsEqual(totalSold))
	})
}

func TestFarmer_MatchPIN(t *testing.T) {
	f, err := farmer.NewFarmer(kernel.NewUUID(), "Abebe Gebre", "Debre Birhan", "1234")
	require.NoError(t, err)

	assert.True(t, f.MatchPIN("1234"))
	assert.False(t, f.MatchPIN("4321"))
	assert.False(t, f.MatchPIN(""))
}

func TestFarmer_CreditSale(t *testing.T) {
	t.Run("should increase balance and total sold by the same amount", func(t *testing.T) {
		balance, _ := kernel.NewMoneyFromInt(15000)
		totalSold, _ := kernel.NewMoneyFromInt(45000)
		f, err := farmer.RestoreFarmer(kernel.NewUUID(), "Abebe Gebre", "Debre Birhan", "1234", balance, totalSold)
		require.NoError(t, err)

		amount, _ := kernel.NewMoneyFromInt(92000)
		require.NoError(t, f.CreditSale(amount))

		assert.Equal(t, "107000", f.Balance().String())
		assert.Equal(t, "137000", f.TotalSold().String())
	})

	t.Run("should reject a zero amount", func(t *testing.T) {
		f, err := farmer.NewFarmer(kernel.NewUUID(), "Abebe Gebre", "Debre Birhan", "1234")
		require.NoError(t, err)

		err = f.CreditSale(kernel.ZeroMoney())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, f.Balance().IsZero())
	})
}

func TestFarmer_Validate(t *testing.T) {
	t.Run("should fail validation for nil farmer", func(t *testing.T) {
		var f *farmer.Farmer

		err := f.Validate()

		require.Error(t, err)
		assert.Equal(t, farmer.ErrFarmerIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		f := &farmer.Farmer{}

		err := f.Validate()

		require.Error(t, err)
		assert.Equal(t, farmer.ErrFarmerIsNotConstructed, err)
	})
}

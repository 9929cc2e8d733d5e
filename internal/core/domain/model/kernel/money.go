package kernel

import (
	"fmt"

	"agrilink/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount in the
// marketplace's single currency (ETB). It wraps shopspring/decimal to avoid
// floating-point drift in price and balance arithmetic.
//
// The zero value is a valid amount of zero. Negative amounts cannot be
// constructed; arithmetic methods return new values and never mutate the
// receiver.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromInt creates a Money from an integer number of currency units.
// Returns an error if the value is negative.
func NewMoneyFromInt(value int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(value))
}

// ZeroMoney returns a Money of amount zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of the receiver and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns the amount multiplied by an integer quantity.
// Used to compute an order's total price from quantity and unit price.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterOrEqual reports whether the receiver is >= other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// Decimal returns the underlying decimal amount for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the plain decimal representation, e.g. "92000".
func (m Money) String() string {
	return m.amount.String()
}

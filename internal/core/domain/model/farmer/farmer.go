// Package farmer contains the Farmer aggregate: the selling party of the
// marketplace, identified by a 4-character PIN and credited through payment
// release only.
package farmer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
)

// PINLength is the exact length a farmer PIN must have.
const PINLength = 4

// ErrFarmerIsNotConstructed is returned when a Farmer instance was not created
// through the NewFarmer or RestoreFarmer factory methods.
var ErrFarmerIsNotConstructed = errors.New("Farmer must be created via NewFarmer constructor")

// Farmer is the aggregate root for a produce seller.
//
// Invariants:
//   - Balance never decreases and is only mutated by CreditSale.
//   - TotalSold is monotonically non-decreasing and grows by the same amount
//     as the balance on each credit.
//   - The PIN is exactly PINLength characters and immutable after creation.
type Farmer struct {
	id        kernel.UUID
	name      string
	location  string
	pin       string
	balance   kernel.Money
	totalSold kernel.Money

	isConstructed bool
}

// NewFarmer creates a Farmer with a zero balance and zero lifetime sales.
// Name, location, and a PINLength-character PIN are required.
func NewFarmer(id kernel.UUID, name, location, pin string) (*Farmer, error) {
	return RestoreFarmer(id, name, location, pin, kernel.ZeroMoney(), kernel.ZeroMoney())
}

// RestoreFarmer reconstructs a Farmer from persistence, including its current
// balance and lifetime sales total.
func RestoreFarmer(id kernel.UUID, name, location, pin string, balance, totalSold kernel.Money) (*Farmer, error) {
	f := &Farmer{
		balance:       balance,
		totalSold:     totalSold,
		isConstructed: true,
	}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
		f.setLocation(location),
		f.setPIN(pin),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate ensures the Farmer instance was properly constructed.
func (f *Farmer) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFarmerIsNotConstructed
	}
	return nil
}

// IsEqual compares two farmers by their unique identifiers.
func (f *Farmer) IsEqual(other *Farmer) bool {
	return other != nil && f.id.IsEqual(other.id)
}

// ID returns the farmer's unique identifier.
func (f *Farmer) ID() kernel.UUID {
	return f.id
}

// Name returns the farmer's display name.
func (f *Farmer) Name() string {
	return f.name
}

// Location returns the farmer's location.
func (f *Farmer) Location() string {
	return f.location
}

// PIN returns the farmer's secret PIN.
func (f *Farmer) PIN() string {
	return f.pin
}

// Balance returns the farmer's current releasable balance.
func (f *Farmer) Balance() kernel.Money {
	return f.balance
}

// TotalSold returns the farmer's cumulative lifetime sales total.
func (f *Farmer) TotalSold() kernel.Money {
	return f.totalSold
}

// MatchPIN reports whether the given PIN exactly matches the stored one.
func (f *Farmer) MatchPIN(pin string) bool {
	return f.pin == pin
}

// CreditSale credits a released payment: balance and lifetime total both grow
// by amount. This is the only balance mutation in the domain; the amount must
// be strictly positive.
func (f *Farmer) CreditSale(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}

	f.balance = f.balance.Add(amount)
	f.totalSold = f.totalSold.Add(amount)
	return nil
}

func (f *Farmer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Farmer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	f.name = name
	return nil
}

func (f *Farmer) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	f.location = location
	return nil
}

func (f *Farmer) setPIN(pin string) error {
	if utf8.RuneCountInString(pin) != PINLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"pin",
			fmt.Errorf("pin must be exactly %d characters", PINLength),
		)
	}
	f.pin = pin
	return nil
}

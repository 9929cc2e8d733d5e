// Package listing contains the Listing aggregate: a farmer's offer to sell a
// quantity of one catalog product at a fixed unit price.
package listing

import (
	"errors"
	"fmt"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
)

// ErrListingIsNotConstructed is returned when a Listing instance was not
// created through the NewListing or RestoreListing factory methods.
var ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing constructor")

// Listing is the aggregate root for a sale offer.
//
// Invariants:
//   - Remaining quantity is never negative.
//   - Status is Sold exactly when the remaining quantity is 0, and Sold is
//     terminal for the listing.
//   - Farmer name and location are snapshots copied at creation time; a later
//     farmer rename must not rewrite them.
//   - Quantity is mutated only by Reduce (order creation).
type Listing struct {
	id             kernel.UUID
	productID      string
	farmerID       kernel.UUID
	farmerName     string
	farmerLocation string
	quantity       int
	pricePerUnit   kernel.Money
	status         Status
	createdAt      time.Time

	isConstructed bool
}

// NewListing creates a Listing in Available status. Quantity must be positive,
// the unit price strictly greater than zero, and the farmer snapshot fields
// non-empty. The product id is not resolved here; catalog misses degrade at
// display time.
func NewListing(
	id kernel.UUID,
	productID string,
	farmerID kernel.UUID,
	farmerName string,
	farmerLocation string,
	quantity int,
	pricePerUnit kernel.Money,
	createdAt time.Time,
) (*Listing, error) {
	return RestoreListing(
		id, productID, farmerID, farmerName, farmerLocation,
		quantity, pricePerUnit, Available, createdAt,
	)
}

// RestoreListing reconstructs a Listing from persistence. Unlike NewListing it
// accepts any valid status and a zero remaining quantity (for Sold listings).
func RestoreListing(
	id kernel.UUID,
	productID string,
	farmerID kernel.UUID,
	farmerName string,
	farmerLocation string,
	quantity int,
	pricePerUnit kernel.Money,
	status Status,
	createdAt time.Time,
) (*Listing, error) {
	l := &Listing{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setProductID(productID),
		l.setFarmer(farmerID, farmerName, farmerLocation),
		l.setQuantity(quantity),
		l.setPricePerUnit(pricePerUnit),
		l.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := l.validateState(); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Listing instance was properly constructed.
func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

// IsEqual compares two listings by their unique identifiers.
func (l *Listing) IsEqual(other *Listing) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() kernel.UUID {
	return l.id
}

// ProductID returns the catalog id of the offered product.
func (l *Listing) ProductID() string {
	return l.productID
}

// FarmerID returns the selling farmer's identifier.
func (l *Listing) FarmerID() kernel.UUID {
	return l.farmerID
}

// FarmerName returns the farmer name snapshot taken at creation time.
func (l *Listing) FarmerName() string {
	return l.farmerName
}

// FarmerLocation returns the farmer location snapshot taken at creation time.
func (l *Listing) FarmerLocation() string {
	return l.farmerLocation
}

// Quantity returns the remaining quantity for sale.
func (l *Listing) Quantity() int {
	return l.quantity
}

// PricePerUnit returns the fixed unit price.
func (l *Listing) PricePerUnit() kernel.Money {
	return l.pricePerUnit
}

// Status returns the current status of the listing.
func (l *Listing) Status() Status {
	return l.status
}

// CreatedAt returns the creation timestamp.
func (l *Listing) CreatedAt() time.Time {
	return l.createdAt
}

// Reduce removes a purchased quantity from the listing.
//
// The requested quantity must be at least 1 and at most the remaining
// quantity; requests that would drive the remainder negative are rejected, so
// the quantity invariant holds even for callers that skipped their own supply
// check. When the remainder reaches 0 the status flips to Sold, which is
// terminal.
func (l *Listing) Reduce(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if l.status.IsTerminal() {
		return errs.NewConflictError("listing is already sold out")
	}

	if quantity > l.quantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, l.quantity)
	}

	l.quantity -= quantity
	if l.quantity == 0 {
		l.status = Sold
	}

	return nil
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	l.productID = productID
	return nil
}

func (l *Listing) setFarmer(farmerID kernel.UUID, name, location string) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("farmerName")
	}
	if location == "" {
		return errs.NewValueIsRequiredError("farmerLocation")
	}

	l.farmerID = farmerID
	l.farmerName = name
	l.farmerLocation = location
	return nil
}

func (l *Listing) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *Listing) setPricePerUnit(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"pricePerUnit",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}
	l.pricePerUnit = price
	return nil
}

func (l *Listing) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}

// validateState enforces the quantity/status coupling after all fields are set.
func (l *Listing) validateState() error {
	if l.quantity == 0 && l.status != Sold {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status for an empty listing", l.status),
		)
	}
	if l.quantity > 0 && l.status == Sold {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("sold listing must have no remaining quantity, got %d", l.quantity),
		)
	}
	return nil
}

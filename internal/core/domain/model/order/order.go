// Package order contains the Order aggregate: a buyer's commitment to
// purchase a quantity from a specific listing, at a price locked at order
// time.
package order

import (
	"errors"
	"fmt"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a purchase.
//
// Invariants:
//   - Quantity is positive.
//   - TotalPrice equals quantity times the listing's unit price at order
//     creation, and is immutable: later listing price changes never affect it.
//   - Status transitions follow the Status state machine; Completed is
//     terminal and reached only by payment release.
type Order struct {
	id            kernel.UUID
	listingID     kernel.UUID
	buyerID       kernel.UUID
	buyerName     string
	buyerLocation string
	quantity      int
	totalPrice    kernel.Money
	status        Status
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates an Order in Pending status. The total price is computed
// here, once, from the quantity and the listing's current unit price; this
// is the only place it is ever derived.
func NewOrder(
	id kernel.UUID,
	listingID kernel.UUID,
	buyerID kernel.UUID,
	buyerName string,
	buyerLocation string,
	quantity int,
	pricePerUnit kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	if !pricePerUnit.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"pricePerUnit",
			fmt.Errorf("%s is not greater than 0", pricePerUnit),
		)
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return RestoreOrder(
		id, listingID, buyerID, buyerName, buyerLocation,
		quantity, pricePerUnit.MulQuantity(quantity), Pending, createdAt,
	)
}

// RestoreOrder reconstructs an Order from persistence with its stored total
// price and status.
func RestoreOrder(
	id kernel.UUID,
	listingID kernel.UUID,
	buyerID kernel.UUID,
	buyerName string,
	buyerLocation string,
	quantity int,
	totalPrice kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setListingID(listingID),
		o.setBuyer(buyerID, buyerName, buyerLocation),
		o.setQuantity(quantity),
		o.setTotalPrice(totalPrice),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ListingID returns the identifier of the originating listing.
func (o *Order) ListingID() kernel.UUID {
	return o.listingID
}

// BuyerID returns the generated buyer identifier shared with the paired delivery.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// BuyerName returns the buyer's name.
func (o *Order) BuyerName() string {
	return o.buyerName
}

// BuyerLocation returns the buyer's location.
func (o *Order) BuyerLocation() string {
	return o.buyerLocation
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// TotalPrice returns the price locked at order creation.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartDelivery marks the order as in delivery. Valid only from Pending.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered marks the order as physically delivered. Cascaded from the
// paired delivery's confirmation.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as completed after payment release.
// A repeat completion returns a conflict so the caller can refuse a double
// payment.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	o.listingID = listingID
	return nil
}

func (o *Order) setBuyer(buyerID kernel.UUID, name, location string) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("buyerName")
	}
	if location == "" {
		return errs.NewValueIsRequiredError("buyerLocation")
	}

	o.buyerID = buyerID
	o.buyerName = name
	o.buyerLocation = location
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if !totalPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalPrice",
			fmt.Errorf("%s is not greater than 0", totalPrice),
		)
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

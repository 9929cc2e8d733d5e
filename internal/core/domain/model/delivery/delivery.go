// Package delivery contains the Delivery aggregate: the logistics record
// tracking physical fulfillment of one order, from pickup to confirmed
// drop-off. Exactly one Delivery exists per Order; both are created in the
// same operation.
package delivery

import (
	"errors"
	"fmt"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory methods.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is the aggregate root for the fulfillment of one order.
//
// Farmer and buyer identity/location and the product display name are
// snapshots copied at creation time, not live joins: later renames must not
// rewrite past deliveries. DeliveredAt is set exactly once, by the first
// confirmation.
type Delivery struct {
	id             kernel.UUID
	orderID        kernel.UUID
	farmerID       kernel.UUID
	farmerName     string
	farmerLocation string
	buyerID        kernel.UUID
	buyerName      string
	buyerLocation  string
	productName    string
	quantity       int
	status         Status
	createdAt      time.Time
	deliveredAt    *time.Time

	isConstructed bool
}

// NewDelivery creates a Delivery in Pending status. The product name may be
// empty: catalog misses degrade to an empty display name rather than failing
// the purchase.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	farmerID kernel.UUID,
	farmerName string,
	farmerLocation string,
	buyerID kernel.UUID,
	buyerName string,
	buyerLocation string,
	productName string,
	quantity int,
	createdAt time.Time,
) (*Delivery, error) {
	return RestoreDelivery(
		id, orderID, farmerID, farmerName, farmerLocation,
		buyerID, buyerName, buyerLocation, productName, quantity,
		Pending, createdAt, nil,
	)
}

// RestoreDelivery reconstructs a Delivery from persistence, including its
// optional delivered timestamp.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	farmerID kernel.UUID,
	farmerName string,
	farmerLocation string,
	buyerID kernel.UUID,
	buyerName string,
	buyerLocation string,
	productName string,
	quantity int,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Delivery, error) {
	d := &Delivery{
		productName:   productName,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setFarmer(farmerID, farmerName, farmerLocation),
		d.setBuyer(buyerID, buyerName, buyerLocation),
		d.setQuantity(quantity),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	if deliveredAt != nil {
		if status != Delivered {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"deliveredAt",
				fmt.Errorf("%s delivery must not carry a delivered timestamp", status),
			)
		}
		at := *deliveredAt
		d.deliveredAt = &at
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the paired order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// FarmerID returns the selling farmer's identifier.
func (d *Delivery) FarmerID() kernel.UUID {
	return d.farmerID
}

// FarmerName returns the farmer name snapshot.
func (d *Delivery) FarmerName() string {
	return d.farmerName
}

// FarmerLocation returns the farmer location snapshot.
func (d *Delivery) FarmerLocation() string {
	return d.farmerLocation
}

// BuyerID returns the buyer identifier shared with the paired order.
func (d *Delivery) BuyerID() kernel.UUID {
	return d.buyerID
}

// BuyerName returns the buyer name snapshot.
func (d *Delivery) BuyerName() string {
	return d.buyerName
}

// BuyerLocation returns the buyer location snapshot.
func (d *Delivery) BuyerLocation() string {
	return d.buyerLocation
}

// ProductName returns the product display name snapshot. May be empty when
// the catalog had no entry for the listing's product at purchase time.
func (d *Delivery) ProductName() string {
	return d.productName
}

// Quantity returns the delivered quantity.
func (d *Delivery) Quantity() int {
	return d.quantity
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// DeliveredAt returns the confirmation timestamp, or nil when the delivery
// has not been confirmed yet.
func (d *Delivery) DeliveredAt() *time.Time {
	if d.deliveredAt == nil {
		return nil
	}
	at := *d.deliveredAt
	return &at
}

// Start marks the delivery as picked up by the delivery agent.
// Valid only from Pending.
func (d *Delivery) Start() error {
	newStatus, err := d.status.Start()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Confirm records physical drop-off at the given time.
//
// The first confirmation transitions the delivery to Delivered and stamps
// DeliveredAt; it returns true. Any later confirmation is an idempotent
// no-op that keeps the original timestamp and returns false, so retries never
// duplicate the cascading order update.
func (d *Delivery) Confirm(at time.Time) bool {
	if d.status == Delivered {
		return false
	}

	d.status = Delivered
	stamp := at
	d.deliveredAt = &stamp
	return true
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setFarmer(farmerID kernel.UUID, name, location string) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("farmerName")
	}
	if location == "" {
		return errs.NewValueIsRequiredError("farmerLocation")
	}

	d.farmerID = farmerID
	d.farmerName = name
	d.farmerLocation = location
	return nil
}

func (d *Delivery) setBuyer(buyerID kernel.UUID, name, location string) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("buyerName")
	}
	if location == "" {
		return errs.NewValueIsRequiredError("buyerLocation")
	}

	d.buyerID = buyerID
	d.buyerName = name
	d.buyerLocation = location
	return nil
}

func (d *Delivery) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	d.quantity = quantity
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

package commands

import (
	"errors"
	"fmt"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
	"agrilink/internal/pkg/guard"
)

var ErrPurchaseCommandIsNotConstructed = errors.New(
	"PurchaseCommand must be created via NewPurchaseCommand constructor",
)

// PurchaseCommand represents a buyer's request to purchase a quantity from a
// listing. One purchase atomically creates an order and its paired delivery
// and decrements the listing.
type PurchaseCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	deliveryID    kernel.UUID
	listingID     kernel.UUID
	buyerName     string
	buyerLocation string
	quantity      int

	guard guard.ConstructorGuard
}

// NewPurchaseCommand creates a purchase command. Order and delivery ids are
// generated by the caller; the shared buyer id is generated in the handler.
func NewPurchaseCommand(
	orderID kernel.UUID,
	deliveryID kernel.UUID,
	listingID kernel.UUID,
	buyerName string,
	buyerLocation string,
	quantity int,
) (PurchaseCommand, error) {
	purchaseCommand := PurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		purchaseCommand.setOrderID(orderID),
		purchaseCommand.setDeliveryID(deliveryID),
		purchaseCommand.setListingID(listingID),
		purchaseCommand.setBuyer(buyerName, buyerLocation),
		purchaseCommand.setQuantity(quantity),
	); err != nil {
		return PurchaseCommand{}, err
	}

	return purchaseCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurchaseCommandIsNotConstructed if validation fails.
func (c PurchaseCommand) Validate() error {
	return c.guard.Validate(ErrPurchaseCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PurchaseCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryID returns the unique identifier for the new delivery.
func (c PurchaseCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ListingID returns the identifier of the listing being purchased from.
func (c PurchaseCommand) ListingID() kernel.UUID {
	return c.listingID
}

// BuyerName returns the buyer's name.
func (c PurchaseCommand) BuyerName() string {
	return c.buyerName
}

// BuyerLocation returns the buyer's location.
func (c PurchaseCommand) BuyerLocation() string {
	return c.buyerLocation
}

// Quantity returns the quantity to purchase.
func (c PurchaseCommand) Quantity() int {
	return c.quantity
}

func (c *PurchaseCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PurchaseCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *PurchaseCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}

	c.listingID = listingID
	return nil
}

func (c *PurchaseCommand) setBuyer(name, location string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("buyerName")
	}
	if location == "" {
		return errs.NewValueIsRequiredError("buyerLocation")
	}

	c.buyerName = name
	c.buyerLocation = location
	return nil
}

func (c *PurchaseCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}

package commands

import (
	"errors"
	"fmt"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
	"agrilink/internal/pkg/guard"
)

var ErrCreateListingCommandIsNotConstructed = errors.New(
	"CreateListingCommand must be created via NewCreateListingCommand constructor",
)

// CreateListingCommand represents a farmer's request to put a quantity of one
// catalog product up for sale at a fixed unit price. The session token must
// resolve to the acting farmer.
type CreateListingCommand struct { //nolint:recvcheck //using for validation
	listingID    kernel.UUID
	token        string
	farmerID     kernel.UUID
	productID    string
	quantity     int
	pricePerUnit kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateListingCommand creates a command to publish a new listing.
// Validates that ids are valid, the token and product id are present, the
// quantity is positive, and the unit price is strictly greater than zero.
func NewCreateListingCommand(
	listingID kernel.UUID,
	token string,
	farmerID kernel.UUID,
	productID string,
	quantity int,
	pricePerUnit kernel.Money,
) (CreateListingCommand, error) {
	listingCommand := CreateListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listingCommand.setListingID(listingID),
		listingCommand.setToken(token),
		listingCommand.setFarmerID(farmerID),
		listingCommand.setProductID(productID),
		listingCommand.setQuantity(quantity),
		listingCommand.setPricePerUnit(pricePerUnit),
	); err != nil {
		return CreateListingCommand{}, err
	}

	return listingCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateListingCommandIsNotConstructed if validation fails.
func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

// ListingID returns the unique identifier for the new listing.
func (c CreateListingCommand) ListingID() kernel.UUID {
	return c.listingID
}

// Token returns the session token of the acting farmer.
func (c CreateListingCommand) Token() string {
	return c.token
}

// FarmerID returns the selling farmer's identifier.
func (c CreateListingCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

// ProductID returns the catalog id of the offered product.
func (c CreateListingCommand) ProductID() string {
	return c.productID
}

// Quantity returns the quantity offered for sale.
func (c CreateListingCommand) Quantity() int {
	return c.quantity
}

// PricePerUnit returns the fixed unit price.
func (c CreateListingCommand) PricePerUnit() kernel.Money {
	return c.pricePerUnit
}

func (c *CreateListingCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}

	c.listingID = listingID
	return nil
}

func (c *CreateListingCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	c.token = token
	return nil
}

func (c *CreateListingCommand) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}

	c.farmerID = farmerID
	return nil
}

func (c *CreateListingCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}

func (c *CreateListingCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}

func (c *CreateListingCommand) setPricePerUnit(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"pricePerUnit",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}

	c.pricePerUnit = price
	return nil
}

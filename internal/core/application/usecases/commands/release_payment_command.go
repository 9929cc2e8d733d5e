package commands

import (
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var ErrReleasePaymentCommandIsNotConstructed = errors.New(
	"ReleasePaymentCommand must be created via NewReleasePaymentCommand constructor",
)

// ReleasePaymentCommand represents the admin's release of the escrowed payment
// for a confirmed delivery.
type ReleasePaymentCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleasePaymentCommand creates a command to release the payment for the
// given delivery.
func NewReleasePaymentCommand(deliveryID kernel.UUID) (ReleasePaymentCommand, error) {
	releaseCommand := ReleasePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := releaseCommand.setDeliveryID(deliveryID); err != nil {
		return ReleasePaymentCommand{}, err
	}

	return releaseCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleasePaymentCommandIsNotConstructed if validation fails.
func (c ReleasePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReleasePaymentCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery whose payment is released.
func (c ReleasePaymentCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *ReleasePaymentCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

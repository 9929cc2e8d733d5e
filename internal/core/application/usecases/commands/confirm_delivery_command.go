package commands

import (
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents the delivery agent's confirmation of
// physical drop-off.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm the delivery.
func NewConfirmDeliveryCommand(deliveryID kernel.UUID) (ConfirmDeliveryCommand, error) {
	confirmCommand := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setDeliveryID(deliveryID); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmDeliveryCommandIsNotConstructed if validation fails.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to confirm.
func (c ConfirmDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *ConfirmDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

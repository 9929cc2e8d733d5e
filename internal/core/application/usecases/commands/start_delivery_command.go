package commands

import (
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents the delivery agent's pickup scan: the
// delivery leaves Pending and its order follows into InDelivery.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to start transit for the delivery.
func NewStartDeliveryCommand(deliveryID kernel.UUID) (StartDeliveryCommand, error) {
	startCommand := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := startCommand.setDeliveryID(deliveryID); err != nil {
		return StartDeliveryCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartDeliveryCommandIsNotConstructed if validation fails.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to start.
func (c StartDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *StartDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

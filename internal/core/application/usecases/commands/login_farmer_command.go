package commands

import (
	"errors"

	"agrilink/internal/core/domain/model/farmer"
	"agrilink/internal/pkg/errs"
	"agrilink/internal/pkg/guard"
)

var ErrLoginFarmerCommandIsNotConstructed = errors.New(
	"LoginFarmerCommand must be created via NewLoginFarmerCommand constructor",
)

// LoginFarmerCommand represents a request to authenticate a farmer by PIN and
// open a session.
type LoginFarmerCommand struct { //nolint:recvcheck //using for validation
	pin string

	guard guard.ConstructorGuard
}

// NewLoginFarmerCommand creates a login command. The PIN must have the exact
// farmer PIN length; lookup happens in the handler.
func NewLoginFarmerCommand(pin string) (LoginFarmerCommand, error) {
	loginCommand := LoginFarmerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := loginCommand.setPIN(pin); err != nil {
		return LoginFarmerCommand{}, err
	}

	return loginCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoginFarmerCommandIsNotConstructed if validation fails.
func (c LoginFarmerCommand) Validate() error {
	return c.guard.Validate(ErrLoginFarmerCommandIsNotConstructed)
}

// PIN returns the PIN to authenticate with.
func (c LoginFarmerCommand) PIN() string {
	return c.pin
}

func (c *LoginFarmerCommand) setPIN(pin string) error {
	if len(pin) != farmer.PINLength {
		return errs.NewValueIsInvalidError("pin")
	}

	c.pin = pin
	return nil
}

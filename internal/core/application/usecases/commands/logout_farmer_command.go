package commands

import (
	"errors"

	"agrilink/internal/pkg/errs"
	"agrilink/internal/pkg/guard"
)

var ErrLogoutFarmerCommandIsNotConstructed = errors.New(
	"LogoutFarmerCommand must be created via NewLogoutFarmerCommand constructor",
)

// LogoutFarmerCommand represents a request to end a farmer session.
type LogoutFarmerCommand struct { //nolint:recvcheck //using for validation
	token string

	guard guard.ConstructorGuard
}

// NewLogoutFarmerCommand creates a logout command for the given session token.
func NewLogoutFarmerCommand(token string) (LogoutFarmerCommand, error) {
	logoutCommand := LogoutFarmerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := logoutCommand.setToken(token); err != nil {
		return LogoutFarmerCommand{}, err
	}

	return logoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLogoutFarmerCommandIsNotConstructed if validation fails.
func (c LogoutFarmerCommand) Validate() error {
	return c.guard.Validate(ErrLogoutFarmerCommandIsNotConstructed)
}

// Token returns the session token to end.
func (c LogoutFarmerCommand) Token() string {
	return c.token
}

func (c *LogoutFarmerCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	c.token = token
	return nil
}

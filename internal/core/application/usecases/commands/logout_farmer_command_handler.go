package commands

import (
	"context"
	"fmt"

	"agrilink/internal/core/ports"
)

// LogoutFarmerCommandHandler ends a farmer session. Logging out an unknown or
// expired token is an idempotent no-op: no error, no audit record.
type LogoutFarmerCommandHandler struct {
	uowFactory SessionUoWFactory
	sessions   ports.SessionStore
}

// NewLogoutFarmerCommandHandler creates a handler for farmer logout operations.
func NewLogoutFarmerCommandHandler(uowFactory SessionUoWFactory, sessions ports.SessionStore) LogoutFarmerCommandHandler {
	return LogoutFarmerCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle processes the logout command.
func (h *LogoutFarmerCommandHandler) Handle(ctx context.Context, cmd LogoutFarmerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, ok := h.sessions.End(cmd.Token())
	if !ok {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err := recordAudit(ctx, uow.AuditLogRepository(),
		"Farmer Logout", fmt.Sprintf("%s logged out", session.FarmerName))
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

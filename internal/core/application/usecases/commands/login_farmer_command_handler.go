package commands

import (
	"context"
	"errors"
	"fmt"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/ports"
	"agrilink/internal/pkg/errs"
)

// LoginFarmerResult carries the opened session back to the caller.
type LoginFarmerResult struct {
	Token      string
	FarmerID   kernel.UUID
	FarmerName string
}

// LoginFarmerCommandHandler authenticates a farmer by exact PIN match and
// opens a session. A PIN that matches no farmer yields an unauthorized error
// with no state change and no audit record.
type LoginFarmerCommandHandler struct {
	uowFactory SessionUoWFactory
	sessions   ports.SessionStore
}

// NewLoginFarmerCommandHandler creates a handler for farmer login operations.
func NewLoginFarmerCommandHandler(uowFactory SessionUoWFactory, sessions ports.SessionStore) LoginFarmerCommandHandler {
	return LoginFarmerCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle processes the login command. The audit record commits before the
// session is opened, so a failed transaction never leaves a live token behind.
func (h *LoginFarmerCommandHandler) Handle(ctx context.Context, cmd LoginFarmerCommand) (LoginFarmerResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginFarmerResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginFarmerResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	farmer, err := uow.FarmerRepository().GetByPIN(ctx, cmd.PIN())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginFarmerResult{}, errs.NewUnauthorizedError("invalid pin")
		}
		return LoginFarmerResult{}, err
	}

	err = recordAudit(ctx, uow.AuditLogRepository(),
		"Farmer Login", fmt.Sprintf("%s logged in", farmer.Name()))
	if err != nil {
		return LoginFarmerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoginFarmerResult{}, err
	}

	session := h.sessions.Start(farmer.ID(), farmer.Name())
	return LoginFarmerResult{
		Token:      session.Token,
		FarmerID:   session.FarmerID,
		FarmerName: session.FarmerName,
	}, nil
}

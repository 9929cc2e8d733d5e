package commands_test

import (
	"errors"
	"testing"
	"time"

	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/domain/model/farmer"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/ports"
	"agrilink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFarmer(t *testing.T, pin string) *farmer.Farmer {
	t.Helper()
	f, err := farmer.NewFarmer(kernel.NewUUID(), "Abebe Gebre", "Debre Birhan", pin)
	require.NoError(t, err)
	return f
}

func TestLoginFarmerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginFarmerCommand("1234")
	require.NoError(t, err)

	testFarmer := newTestFarmer(t, "1234")
	session := ports.Session{
		Token:      "token-1",
		FarmerID:   testFarmer.ID(),
		FarmerName: testFarmer.Name(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	farmerRepo := new(MockFarmerRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FarmerRepository").Return(farmerRepo).Once(),
		farmerRepo.On("GetByPIN", ctx, "1234").Return(testFarmer, nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	sessions := new(MockSessionStore)
	sessions.On("Start", testFarmer.ID(), testFarmer.Name()).Return(session).Once()

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLoginFarmerCommandHandler(factory, sessions)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "token-1", result.Token)
	assert.Equal(t, testFarmer.ID(), result.FarmerID)
	assert.Equal(t, "Abebe Gebre", result.FarmerName)
	farmerRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	sessions.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLoginFarmerCommandHandler_Handle_UnknownPIN(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginFarmerCommand("0000")
	require.NoError(t, err)

	farmerRepo := new(MockFarmerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FarmerRepository").Return(farmerRepo).Once(),
		farmerRepo.On("GetByPIN", ctx, "0000").
			Return(nil, errs.NewObjectNotFoundError("pin", "0000")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	sessions := new(MockSessionStore)
	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLoginFarmerCommandHandler(factory, sessions)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	sessions.AssertNotCalled(t, "Start")
	uow.AssertNotCalled(t, "Commit")
}

func TestLoginFarmerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.LoginFarmerCommand{} // not constructed properly

	factory := new(MockSessionUoWFactory)
	handler := commands.NewLoginFarmerCommandHandler(factory, new(MockSessionStore))
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrLoginFarmerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestLoginFarmerCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginFarmerCommand("1234")
	require.NoError(t, err)

	testFarmer := newTestFarmer(t, "1234")

	farmerRepo := new(MockFarmerRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FarmerRepository").Return(farmerRepo).Once(),
		farmerRepo.On("GetByPIN", ctx, "1234").Return(testFarmer, nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	sessions := new(MockSessionStore)
	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLoginFarmerCommandHandler(factory, sessions)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	sessions.AssertNotCalled(t, "Start")
}

func TestNewLoginFarmerCommand(t *testing.T) {
	t.Run("should reject wrong pin length", func(t *testing.T) {
		_, err := commands.NewLoginFarmerCommand("123")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty pin", func(t *testing.T) {
		_, err := commands.NewLoginFarmerCommand("")

		require.Error(t, err)
	})
}

package commands_test

import (
	"testing"
	"time"

	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/domain/model/delivery"
	"agrilink/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testDelivery, testOrder := newPendingPair(t)
	cmd, err := commands.NewConfirmDeliveryCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, testDelivery.Status())
	assert.Equal(t, order.Delivered, testOrder.Status())
	require.NotNil(t, testDelivery.DeliveredAt())
	deliveryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_RepeatIsNoOp(t *testing.T) {
	ctx := t.Context()
	testDelivery, _ := newPendingPair(t)
	firstConfirmation := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	require.True(t, testDelivery.Confirm(firstConfirmation))
	cmd, err := commands.NewConfirmDeliveryCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, firstConfirmation, *testDelivery.DeliveredAt())
	deliveryRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
	uow.AssertNotCalled(t, "AuditLogRepository")
}

func TestConfirmDeliveryCommandHandler_Handle_ConfirmWithoutPickupScan(t *testing.T) {
	ctx := t.Context()
	testDelivery, testOrder := newPendingPair(t)
	cmd, err := commands.NewConfirmDeliveryCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AuditLogRepository").Return(auditRepo).Once()
	deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once()
	deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	// Order still Pending (never started transit); confirmation is allowed.
	handler := commands.NewConfirmDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
}

package commands_test

import (
	"testing"
	"time"

	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/domain/model/delivery"
	"agrilink/internal/core/domain/model/farmer"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/order"
	"agrilink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newDeliveredSale builds a confirmed delivery with its order and farmer, the
// state payment release operates on.
func newDeliveredSale(t *testing.T) (*delivery.Delivery, *order.Order, *farmer.Farmer) {
	t.Helper()
	price, err := kernel.NewMoneyFromInt(4600)
	require.NoError(t, err)

	testFarmer, err := farmer.NewFarmer(kernel.NewUUID(), "Abebe Gebre", "Debre Birhan", "1234")
	require.NoError(t, err)

	buyerID := kernel.NewUUID()
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), buyerID,
		"Ethio Foods Ltd", "Addis Ababa",
		20, price, time.Now().UTC(),
	)
	require.NoError(t, err)
	require.NoError(t, testOrder.MarkDelivered())

	testDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(), testOrder.ID(),
		testFarmer.ID(), testFarmer.Name(), testFarmer.Location(),
		buyerID, "Ethio Foods Ltd", "Addis Ababa",
		"Teff", 20, time.Now().UTC(),
	)
	require.NoError(t, err)
	testDelivery.Confirm(time.Now().UTC())

	return testDelivery, testOrder, testFarmer
}

func TestReleasePaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testDelivery, testOrder, testFarmer := newDeliveredSale(t)
	cmd, err := commands.NewReleasePaymentCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	farmerRepo := new(MockFarmerRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("FarmerRepository").Return(farmerRepo).Once(),
		farmerRepo.On("Get", ctx, testFarmer.ID()).Return(testFarmer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("FarmerRepository").Return(farmerRepo).Once(),
		farmerRepo.On("Update", ctx, mock.AnythingOfType("*farmer.Farmer")).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleasePaymentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())
	assert.Equal(t, "92000", testFarmer.Balance().String())
	assert.Equal(t, "92000", testFarmer.TotalSold().String())
	deliveryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	farmerRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleasePaymentCommandHandler_Handle_DoubleRelease(t *testing.T) {
	ctx := t.Context()
	testDelivery, testOrder, _ := newDeliveredSale(t)
	require.NoError(t, testOrder.Complete()) // first release already happened
	cmd, err := commands.NewReleasePaymentCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleasePaymentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "payment already released")
	uow.AssertNotCalled(t, "Commit")
	uow.AssertNotCalled(t, "FarmerRepository")
}

func TestReleasePaymentCommandHandler_Handle_BeforeDelivery(t *testing.T) {
	ctx := t.Context()
	testDelivery, testOrder := newPendingPair(t)
	cmd, err := commands.NewReleasePaymentCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleasePaymentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestReleasePaymentCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewReleasePaymentCommand(deliveryID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).
			Return(nil, errs.NewObjectNotFoundError("deliveryID", deliveryID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleasePaymentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

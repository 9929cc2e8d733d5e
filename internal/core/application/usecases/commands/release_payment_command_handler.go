package commands

import (
	"context"
	"fmt"
)

// ReleasePaymentCommandHandler settles a confirmed delivery: the order becomes
// Completed and the farmer is credited the order's locked total price, in one
// transaction. Completed is checked through the order state machine, so a
// second release for the same order is a conflict and credits nothing.
type ReleasePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewReleasePaymentCommandHandler creates a handler for payment release operations.
func NewReleasePaymentCommandHandler(uowFactory PaymentUoWFactory) ReleasePaymentCommandHandler {
	return ReleasePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command.
func (h *ReleasePaymentCommandHandler) Handle(ctx context.Context, cmd ReleasePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settledDelivery, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	settledOrder, err := uow.OrderRepository().Get(ctx, settledDelivery.OrderID())
	if err != nil {
		return err
	}

	if err = settledOrder.Complete(); err != nil {
		return err
	}

	paidFarmer, err := uow.FarmerRepository().Get(ctx, settledDelivery.FarmerID())
	if err != nil {
		return err
	}

	if err = paidFarmer.CreditSale(settledOrder.TotalPrice()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, settledOrder); err != nil {
		return err
	}
	if err = uow.FarmerRepository().Update(ctx, paidFarmer); err != nil {
		return err
	}

	err = recordAudit(ctx, uow.AuditLogRepository(), "Payment Released",
		fmt.Sprintf("%s ETB released to %s", settledOrder.TotalPrice(), settledDelivery.FarmerName()))
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

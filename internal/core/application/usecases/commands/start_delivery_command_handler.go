package commands

import (
	"context"
	"fmt"
)

// StartDeliveryCommandHandler moves a delivery into transit and cascades the
// paired order into InDelivery. Starting a delivery that already left Pending
// is a conflict.
type StartDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for delivery start operations.
func NewStartDeliveryCommandHandler(uowFactory DeliveryUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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

	startedDelivery, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = startedDelivery.Start(); err != nil {
		return err
	}

	pairedOrder, err := uow.OrderRepository().Get(ctx, startedDelivery.OrderID())
	if err != nil {
		return err
	}

	if err = pairedOrder.StartDelivery(); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, startedDelivery); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, pairedOrder); err != nil {
		return err
	}

	err = recordAudit(ctx, uow.AuditLogRepository(), "Delivery In Transit",
		fmt.Sprintf("Delivery %s to %s in transit", startedDelivery.ID(), startedDelivery.BuyerName()))
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

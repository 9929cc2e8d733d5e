package commands

import (
	"context"
	"fmt"
	"time"
)

// ConfirmDeliveryCommandHandler records physical drop-off: the delivery moves
// to Delivered with its timestamp stamped once, and the paired order cascades
// to Delivered. Re-confirming an already delivered delivery is an idempotent
// no-op with no writes and no audit record.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation operations.
func NewConfirmDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	confirmedDelivery, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if !confirmedDelivery.Confirm(time.Now().UTC()) {
		return nil
	}

	pairedOrder, err := uow.OrderRepository().Get(ctx, confirmedDelivery.OrderID())
	if err != nil {
		return err
	}

	if err = pairedOrder.MarkDelivered(); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, confirmedDelivery); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, pairedOrder); err != nil {
		return err
	}

	err = recordAudit(ctx, uow.AuditLogRepository(), "Delivery Confirmed",
		fmt.Sprintf("Delivery %s to %s confirmed", confirmedDelivery.ID(), confirmedDelivery.BuyerName()))
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

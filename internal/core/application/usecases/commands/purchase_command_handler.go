package commands

import (
	"context"
	"fmt"
	"time"

	"agrilink/internal/core/domain/model/delivery"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/order"
	"agrilink/internal/core/domain/model/product"
)

// PurchaseResult carries the purchase outcome back to the caller.
type PurchaseResult struct {
	OrderID    kernel.UUID
	DeliveryID kernel.UUID
	BuyerID    kernel.UUID
	TotalPrice kernel.Money
}

// PurchaseCommandHandler executes a purchase: the listing decrement, the order
// insert, and the delivery insert commit in one transaction or not at all.
// A request exceeding the remaining quantity is rejected before any write.
type PurchaseCommandHandler struct {
	uowFactory PurchaseUoWFactory
}

// NewPurchaseCommandHandler creates a handler for purchase operations.
func NewPurchaseCommandHandler(uowFactory PurchaseUoWFactory) PurchaseCommandHandler {
	return PurchaseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purchase command. The order and its paired delivery
// share a generated buyer id; the total price is locked from the listing's
// current unit price.
func (h *PurchaseCommandHandler) Handle(ctx context.Context, cmd PurchaseCommand) (PurchaseResult, error) {
	if err := cmd.Validate(); err != nil {
		return PurchaseResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PurchaseResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purchasedListing, err := uow.ListingRepository().Get(ctx, cmd.ListingID())
	if err != nil {
		return PurchaseResult{}, err
	}

	pricePerUnit := purchasedListing.PricePerUnit()
	if err = purchasedListing.Reduce(cmd.Quantity()); err != nil {
		return PurchaseResult{}, err
	}

	now := time.Now().UTC()
	buyerID := kernel.NewUUID()

	newOrder, err := order.NewOrder(
		cmd.OrderID(), purchasedListing.ID(), buyerID,
		cmd.BuyerName(), cmd.BuyerLocation(),
		cmd.Quantity(), pricePerUnit, now,
	)
	if err != nil {
		return PurchaseResult{}, err
	}

	productName := ""
	if p, found := product.Find(purchasedListing.ProductID()); found {
		productName = p.NameDisplay
	}

	newDelivery, err := delivery.NewDelivery(
		cmd.DeliveryID(), newOrder.ID(),
		purchasedListing.FarmerID(), purchasedListing.FarmerName(), purchasedListing.FarmerLocation(),
		buyerID, cmd.BuyerName(), cmd.BuyerLocation(),
		productName, cmd.Quantity(), now,
	)
	if err != nil {
		return PurchaseResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return PurchaseResult{}, err
	}
	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return PurchaseResult{}, err
	}
	if err = uow.ListingRepository().Update(ctx, purchasedListing); err != nil {
		return PurchaseResult{}, err
	}

	err = recordAudit(ctx, uow.AuditLogRepository(), "New Order",
		fmt.Sprintf("%s ordered %d %s from %s",
			cmd.BuyerName(), cmd.Quantity(), productName, purchasedListing.FarmerName()))
	if err != nil {
		return PurchaseResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PurchaseResult{}, err
	}

	return PurchaseResult{
		OrderID:    newOrder.ID(),
		DeliveryID: newDelivery.ID(),
		BuyerID:    buyerID,
		TotalPrice: newOrder.TotalPrice(),
	}, nil
}

package commands

import (
	"context"
	"fmt"
	"time"

	"agrilink/internal/core/domain/model/listing"
	"agrilink/internal/core/domain/model/product"
	"agrilink/internal/core/ports"
	"agrilink/internal/pkg/errs"
)

// CreateListingCommandHandler publishes a new listing on behalf of a logged-in
// farmer. The farmer's name and location are snapshotted onto the listing at
// creation time.
type CreateListingCommandHandler struct {
	uowFactory ListingUoWFactory
	sessions   ports.SessionStore
}

// NewCreateListingCommandHandler creates a handler for listing creation operations.
func NewCreateListingCommandHandler(
	uowFactory ListingUoWFactory,
	sessions ports.SessionStore,
) CreateListingCommandHandler {
	return CreateListingCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle processes the listing creation command. The session token must
// resolve to the command's farmer; otherwise the operation is unauthorized and
// nothing is persisted.
func (h *CreateListingCommandHandler) Handle(ctx context.Context, cmd CreateListingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, ok := h.sessions.Resolve(cmd.Token())
	if !ok {
		return errs.NewUnauthorizedError("no active session")
	}
	if !session.FarmerID.IsEqual(cmd.FarmerID()) {
		return errs.NewUnauthorizedError("session does not belong to the acting farmer")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	farmer, err := uow.FarmerRepository().Get(ctx, cmd.FarmerID())
	if err != nil {
		return err
	}

	newListing, err := listing.NewListing(
		cmd.ListingID(), cmd.ProductID(),
		farmer.ID(), farmer.Name(), farmer.Location(),
		cmd.Quantity(), cmd.PricePerUnit(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ListingRepository().Add(ctx, newListing); err != nil {
		return err
	}

	productName := ""
	if p, found := product.Find(cmd.ProductID()); found {
		productName = p.NameDisplay
	}

	err = recordAudit(ctx, uow.AuditLogRepository(), "New Listing",
		fmt.Sprintf("%s listed %d %s at %s ETB",
			farmer.Name(), cmd.Quantity(), productName, cmd.PricePerUnit()))
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

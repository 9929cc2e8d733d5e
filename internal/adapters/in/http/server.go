// Package http exposes the marketplace over a REST API. Handlers stay thin:
// they bind and validate the request, build a command or query, and map the
// result or error to a response. All business rules live in the use cases.
package http

import (
	"net/http"

	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/application/usecases/queries"
	"agrilink/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	loginHandler           commands.LoginFarmerCommandHandler
	logoutHandler          commands.LogoutFarmerCommandHandler
	createListingHandler   commands.CreateListingCommandHandler
	purchaseHandler        commands.PurchaseCommandHandler
	startDeliveryHandler   commands.StartDeliveryCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	releasePaymentHandler  commands.ReleasePaymentCommandHandler

	// Query handlers
	getProductsHandler   queries.GetProductsQueryHandler
	getFarmersHandler    queries.GetFarmersQueryHandler
	getListingsHandler   queries.GetListingsQueryHandler
	getOrdersHandler     queries.GetOrdersQueryHandler
	getDeliveriesHandler queries.GetDeliveriesQueryHandler
	getAuditLogsHandler  queries.GetAuditLogsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	loginHandler commands.LoginFarmerCommandHandler,
	logoutHandler commands.LogoutFarmerCommandHandler,
	createListingHandler commands.CreateListingCommandHandler,
	purchaseHandler commands.PurchaseCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	releasePaymentHandler commands.ReleasePaymentCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getFarmersHandler queries.GetFarmersQueryHandler,
	getListingsHandler queries.GetListingsQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getDeliveriesHandler queries.GetDeliveriesQueryHandler,
	getAuditLogsHandler queries.GetAuditLogsQueryHandler,
) *Server {
	return &Server{
		loginHandler:           loginHandler,
		logoutHandler:          logoutHandler,
		createListingHandler:   createListingHandler,
		purchaseHandler:        purchaseHandler,
		startDeliveryHandler:   startDeliveryHandler,
		confirmDeliveryHandler: confirmDeliveryHandler,
		releasePaymentHandler:  releasePaymentHandler,
		getProductsHandler:     getProductsHandler,
		getFarmersHandler:      getFarmersHandler,
		getListingsHandler:     getListingsHandler,
		getOrdersHandler:       getOrdersHandler,
		getDeliveriesHandler:   getDeliveriesHandler,
		getAuditLogsHandler:    getAuditLogsHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/sessions", s.Login)
	v1.DELETE("/sessions/:token", s.Logout)
	v1.GET("/products", s.GetProducts)
	v1.GET("/farmers", s.GetFarmers)
	v1.POST("/listings", s.CreateListing)
	v1.GET("/listings", s.GetListings)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/deliveries", s.GetDeliveries)
	v1.POST("/deliveries/:deliveryId/start", s.StartDelivery)
	v1.POST("/deliveries/:deliveryId/confirm", s.ConfirmDelivery)
	v1.POST("/deliveries/:deliveryId/release-payment", s.ReleasePayment)
	v1.GET("/audit-logs", s.GetAuditLogs)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Login handles POST /api/v1/sessions - opens a session by PIN.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginFarmerCommand(req.PIN)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Session{
		Token:      result.Token,
		FarmerID:   result.FarmerID.String(),
		FarmerName: result.FarmerName,
	})
}

// Logout handles DELETE /api/v1/sessions/:token - ends a session.
// Ending an unknown or already ended session succeeds without effect.
func (s *Server) Logout(ctx echo.Context) error {
	cmd, err := commands.NewLogoutFarmerCommand(ctx.Param("token"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.logoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products - retrieves the product catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			ID:          p.ID,
			NameLocal:   p.NameLocal,
			NameDisplay: p.NameDisplay,
			Image:       p.Image,
			AvgPrice:    p.AvgPrice.String(),
			Unit:        p.Unit,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFarmers handles GET /api/v1/farmers - retrieves all farmers.
func (s *Server) GetFarmers(ctx echo.Context) error {
	farmers, err := s.getFarmersHandler.Handle(ctx.Request().Context(), queries.NewGetFarmersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Farmer, len(farmers))
	for i, f := range farmers {
		response[i] = Farmer{
			ID:        f.ID.String(),
			Name:      f.Name,
			Location:  f.Location,
			Balance:   f.Balance.String(),
			TotalSold: f.TotalSold.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateListing handles POST /api/v1/listings - publishes a new listing.
func (s *Server) CreateListing(ctx echo.Context) error {
	var req CreateListingRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	farmerID, err := kernel.UUIDFromString(req.FarmerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid farmer id: " + req.FarmerID,
		})
	}

	price, err := decimal.NewFromString(req.PricePerUnit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid price: " + req.PricePerUnit,
		})
	}
	pricePerUnit, err := kernel.NewMoney(price)
	if err != nil {
		return writeError(ctx, err)
	}

	listingID := kernel.NewUUID()

	cmd, err := commands.NewCreateListingCommand(
		listingID, req.Token, farmerID, req.ProductID, req.Quantity, pricePerUnit,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ListingCreated{ID: listingID.String()})
}

// GetListings handles GET /api/v1/listings - retrieves all listings.
func (s *Server) GetListings(ctx echo.Context) error {
	listings, err := s.getListingsHandler.Handle(ctx.Request().Context(), queries.NewGetListingsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Listing, len(listings))
	for i, l := range listings {
		response[i] = Listing{
			ID:             l.ID.String(),
			ProductID:      l.ProductID,
			FarmerID:       l.FarmerID.String(),
			FarmerName:     l.FarmerName,
			FarmerLocation: l.FarmerLocation,
			Quantity:       l.Quantity,
			PricePerUnit:   l.PricePerUnit.String(),
			Status:         l.Status.String(),
			CreatedAt:      l.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - purchases from a listing.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req PurchaseRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	listingID, err := kernel.UUIDFromString(req.ListingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid listing id: " + req.ListingID,
		})
	}

	cmd, err := commands.NewPurchaseCommand(
		kernel.NewUUID(), kernel.NewUUID(), listingID,
		req.BuyerName, req.BuyerLocation, req.Quantity,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.purchaseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PurchaseCreated{
		OrderID:    result.OrderID.String(),
		DeliveryID: result.DeliveryID.String(),
		BuyerID:    result.BuyerID.String(),
		TotalPrice: result.TotalPrice.String(),
	})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:            o.ID.String(),
			ListingID:     o.ListingID.String(),
			BuyerID:       o.BuyerID.String(),
			BuyerName:     o.BuyerName,
			BuyerLocation: o.BuyerLocation,
			Quantity:      o.Quantity,
			TotalPrice:    o.TotalPrice.String(),
			Status:        o.Status.String(),
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveries handles GET /api/v1/deliveries - retrieves all deliveries.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	deliveries, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveriesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = Delivery{
			ID:             d.ID.String(),
			OrderID:        d.OrderID.String(),
			FarmerID:       d.FarmerID.String(),
			FarmerName:     d.FarmerName,
			FarmerLocation: d.FarmerLocation,
			BuyerID:        d.BuyerID.String(),
			BuyerName:      d.BuyerName,
			BuyerLocation:  d.BuyerLocation,
			ProductName:    d.ProductName,
			Quantity:       d.Quantity,
			Status:         d.Status.String(),
			CreatedAt:      d.CreatedAt,
			DeliveredAt:    d.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartDelivery handles POST /api/v1/deliveries/:deliveryId/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery id: " + ctx.Param("deliveryId"),
		})
	}

	cmd, err := commands.NewStartDeliveryCommand(deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/deliveries/:deliveryId/confirm.
// Confirming an already delivered delivery succeeds without effect.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery id: " + ctx.Param("deliveryId"),
		})
	}

	cmd, err := commands.NewConfirmDeliveryCommand(deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleasePayment handles POST /api/v1/deliveries/:deliveryId/release-payment.
func (s *Server) ReleasePayment(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery id: " + ctx.Param("deliveryId"),
		})
	}

	cmd, err := commands.NewReleasePaymentCommand(deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.releasePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAuditLogs handles GET /api/v1/audit-logs - retrieves the retained
// activity log, newest first.
func (s *Server) GetAuditLogs(ctx echo.Context) error {
	entries, err := s.getAuditLogsHandler.Handle(ctx.Request().Context(), queries.NewGetAuditLogsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AuditEntry, len(entries))
	for i, e := range entries {
		response[i] = AuditEntry{
			ID:         e.ID.String(),
			Action:     e.Action,
			Details:    e.Details,
			RecordedAt: e.RecordedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

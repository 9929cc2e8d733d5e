package cmd

import (
	httpadapter "agrilink/internal/adapters/in/http"
	"agrilink/internal/adapters/out/memory/sessionstore"
	"agrilink/internal/adapters/out/postgres"
	"agrilink/internal/adapters/out/postgres/auditrepo"
	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/application/usecases/queries"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sessions   *sessionstore.Store
	config     Config
	logger     *zap.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, configs.AuditRetention),
		sessions:   sessionstore.NewStore(configs.SessionTTL),
		config:     configs,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateLoginFarmerCommandHandler() commands.LoginFarmerCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginFarmerCommandHandler(f, c.sessions)
}

func (c *CompositionRoot) CreateLogoutFarmerCommandHandler() commands.LogoutFarmerCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogoutFarmerCommandHandler(f, c.sessions)
}

func (c *CompositionRoot) CreateCreateListingCommandHandler() commands.CreateListingCommandHandler {
	var f commands.ListingUoWFactory = FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateListingCommandHandler(f, c.sessions)
}

func (c *CompositionRoot) CreatePurchaseCommandHandler() commands.PurchaseCommandHandler {
	var f commands.PurchaseUoWFactory = FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurchaseCommandHandler(f)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateReleasePaymentCommandHandler() commands.ReleasePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleasePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler()
}

func (c *CompositionRoot) CreateGetFarmersQueryHandler() queries.GetFarmersQueryHandler {
	return queries.NewGetFarmersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetListingsQueryHandler() queries.GetListingsQueryHandler {
	return queries.NewGetListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditLogsQueryHandler() queries.GetAuditLogsQueryHandler {
	return queries.NewGetAuditLogsQueryHandler(c.gormDB, c.config.AuditRetention)
}

// CreateServer builds the HTTP server with every command and query handler wired.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateLoginFarmerCommandHandler(),
		c.CreateLogoutFarmerCommandHandler(),
		c.CreateCreateListingCommandHandler(),
		c.CreatePurchaseCommandHandler(),
		c.CreateStartDeliveryCommandHandler(),
		c.CreateConfirmDeliveryCommandHandler(),
		c.CreateReleasePaymentCommandHandler(),
		c.CreateGetProductsQueryHandler(),
		c.CreateGetFarmersQueryHandler(),
		c.CreateGetListingsQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetDeliveriesQueryHandler(),
		c.CreateGetAuditLogsQueryHandler(),
	)
}

// CreateJobManager builds the background jobs: the audit retention trim and
// the session sweep.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	trimmer := auditrepo.NewGormAuditLogRepository(c.gormDB, noopTracker{}, c.config.AuditRetention)
	return jobs.NewJobManager(trimmer, c.sessions, c.logger)
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}

type FuncPurchaseUoWFactory func() commands.PurchaseUoW

func (f FuncPurchaseUoWFactory) Create() commands.PurchaseUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

// noopTracker satisfies the repositories' aggregate tracking dependency for
// maintenance work that runs outside any unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

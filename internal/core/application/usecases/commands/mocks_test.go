package commands_test

import (
	"context"

	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/domain/model/audit"
	"agrilink/internal/core/domain/model/delivery"
	"agrilink/internal/core/domain/model/farmer"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/listing"
	"agrilink/internal/core/domain/model/order"
	"agrilink/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockFarmerRepository struct{ mock.Mock }

func (m *MockFarmerRepository) Add(ctx context.Context, f *farmer.Farmer) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFarmerRepository) Update(ctx context.Context, f *farmer.Farmer) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFarmerRepository) Get(ctx context.Context, id kernel.UUID) (*farmer.Farmer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farmer.Farmer), args.Error(1)
}

func (m *MockFarmerRepository) GetByPIN(ctx context.Context, pin string) (*farmer.Farmer, error) {
	args := m.Called(ctx, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farmer.Farmer), args.Error(1)
}

func (m *MockFarmerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Add(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Append(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) TrimToRetention(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Start(farmerID kernel.UUID, farmerName string) ports.Session {
	args := m.Called(farmerID, farmerName)
	return args.Get(0).(ports.Session)
}

func (m *MockSessionStore) Resolve(token string) (ports.Session, bool) {
	args := m.Called(token)
	return args.Get(0).(ports.Session), args.Bool(1)
}

func (m *MockSessionStore) End(token string) (ports.Session, bool) {
	args := m.Called(token)
	return args.Get(0).(ports.Session), args.Bool(1)
}

func (m *MockSessionStore) Sweep() int {
	args := m.Called()
	return args.Int(0)
}

// MockUoW satisfies every composite unit of work interface in the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) FarmerRepository() ports.FarmerRepository {
	args := m.Called()
	return args.Get(0).(ports.FarmerRepository)
}

func (m *MockUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) AuditLogRepository() ports.AuditLogRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditLogRepository)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	args := m.Called()
	return args.Get(0).(commands.SessionUoW)
}

type MockListingUoWFactory struct{ mock.Mock }

func (m *MockListingUoWFactory) Create() commands.ListingUoW {
	args := m.Called()
	return args.Get(0).(commands.ListingUoW)
}

type MockPurchaseUoWFactory struct{ mock.Mock }

func (m *MockPurchaseUoWFactory) Create() commands.PurchaseUoW {
	args := m.Called()
	return args.Get(0).(commands.PurchaseUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

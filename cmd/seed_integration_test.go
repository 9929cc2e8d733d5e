package cmd_test

import (
	"context"
	"testing"
	"time"

	"agrilink/cmd"
	"agrilink/internal/adapters/out/postgres/deliveryrepo"
	"agrilink/internal/adapters/out/postgres/farmerrepo"
	"agrilink/internal/adapters/out/postgres/listingrepo"
	"agrilink/internal/adapters/out/postgres/orderrepo"
	"agrilink/internal/core/domain/model/delivery"
	"agrilink/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SeedIntegrationTestSuite verifies the demo dataset loaded at startup.
type SeedIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *SeedIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(cmd.PrepareDatabase(db))
}

func (suite *SeedIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SeedIntegrationTestSuite) TestSeed_LoadsDemoDataset() {
	counts := map[any]int64{
		&farmerrepo.FarmerDTO{}:     3,
		&listingrepo.ListingDTO{}:   5,
		&orderrepo.OrderDTO{}:       2,
		&deliveryrepo.DeliveryDTO{}: 2,
	}
	for model, expected := range counts {
		var count int64
		suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
		suite.Equal(expected, count)
	}
}

// Every seeded delivery must have a pending order behind it, and that order
// must point at a seeded listing. Otherwise the delivery agent cannot start,
// confirm, or release payment on the demo shipments.
func (suite *SeedIntegrationTestSuite) TestSeed_DeliveriesArePairedWithOrders() {
	var deliveries []deliveryrepo.DeliveryDTO
	suite.Require().NoError(suite.db.Find(&deliveries).Error)
	suite.Require().Len(deliveries, 2)

	for _, d := range deliveries {
		suite.Equal(int(delivery.Pending), d.Status)

		var o orderrepo.OrderDTO
		suite.Require().NoError(
			suite.db.First(&o, "id = ?", d.OrderID).Error,
			"delivery %s has no order %s", d.ID, d.OrderID,
		)
		suite.Equal(int(order.Pending), o.Status)
		suite.Equal(d.BuyerID, o.BuyerID)
		suite.Equal(d.BuyerName, o.BuyerName)
		suite.Equal(d.Quantity, o.Quantity)

		var l listingrepo.ListingDTO
		suite.Require().NoError(suite.db.First(&l, "id = ?", o.ListingID).Error)
		suite.Equal(d.FarmerID, l.FarmerID)
		suite.True(o.TotalPrice.Equal(l.PricePerUnit.Mul(decimal.NewFromInt(int64(o.Quantity)))))
	}
}

func (suite *SeedIntegrationTestSuite) TestSeed_IsIdempotent() {
	suite.Require().NoError(cmd.PrepareDatabase(suite.db))

	var count int64
	suite.Require().NoError(suite.db.Model(&farmerrepo.FarmerDTO{}).Count(&count).Error)
	suite.Equal(int64(3), count)
}

func TestSeedIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SeedIntegrationTestSuite))
}

package cmd

import (
	"time"

	"agrilink/internal/adapters/out/postgres/auditrepo"
	"agrilink/internal/adapters/out/postgres/deliveryrepo"
	"agrilink/internal/adapters/out/postgres/farmerrepo"
	"agrilink/internal/adapters/out/postgres/listingrepo"
	"agrilink/internal/adapters/out/postgres/orderrepo"
	"agrilink/internal/core/domain/model/delivery"
	"agrilink/internal/core/domain/model/listing"
	"agrilink/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fixed identifiers keep the demo dataset stable across restarts.
var (
	farmerAbebeID  = uuid.MustParse("00000000-0000-0000-0000-0000000000f1")
	farmerKebedeID = uuid.MustParse("00000000-0000-0000-0000-0000000000f2")
	farmerMartaID  = uuid.MustParse("00000000-0000-0000-0000-0000000000f3")
)

// PrepareDatabase migrates the schema and loads the demo dataset. Seeding is
// idempotent: it is skipped as soon as any farmer exists.
func PrepareDatabase(db *gorm.DB) error {
	if err := migrateDatabase(db); err != nil {
		return err
	}
	return seedDatabase(db)
}

func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&farmerrepo.FarmerDTO{},
		&listingrepo.ListingDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&auditrepo.AuditLogDTO{},
	)
}

func seedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&farmerrepo.FarmerDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()

	farmers := []farmerrepo.FarmerDTO{
		{
			ID:        farmerAbebeID,
			Name:      "አበበ ገብረ",
			Location:  "ደብረ ብርሃን",
			PIN:       "1234",
			Balance:   decimal.NewFromInt(15000),
			TotalSold: decimal.NewFromInt(45000),
		},
		{
			ID:        farmerKebedeID,
			Name:      "ከበደ ታደሰ",
			Location:  "ባህር ዳር",
			PIN:       "5678",
			Balance:   decimal.NewFromInt(22000),
			TotalSold: decimal.NewFromInt(78000),
		},
		{
			ID:        farmerMartaID,
			Name:      "ማርታ ሀይሉ",
			Location:  "ጎንደር",
			PIN:       "9012",
			Balance:   decimal.NewFromInt(8500),
			TotalSold: decimal.NewFromInt(32000),
		},
	}

	listings := []listingrepo.ListingDTO{
		seedListing("00000000-0000-0000-0000-0000000000a1", "1", farmers[0], 50, 4600, now),
		seedListing("00000000-0000-0000-0000-0000000000a2", "2", farmers[1], 200, 1150, now),
		seedListing("00000000-0000-0000-0000-0000000000a3", "5", farmers[2], 150, 420, now),
		seedListing("00000000-0000-0000-0000-0000000000a4", "3", farmers[0], 100, 780, now),
		seedListing("00000000-0000-0000-0000-0000000000a5", "6", farmers[1], 80, 360, now),
	}

	// Two in-flight purchases predating the dataset. Each delivery is paired
	// with a pending order on one of the seeded listings, so the delivery
	// agent can walk them through start, confirm, and payment release.
	orders := []orderrepo.OrderDTO{
		{
			ID:            uuid.MustParse("00000000-0000-0000-0000-0000000000e1"),
			ListingID:     listings[0].ID,
			BuyerID:       uuid.MustParse("00000000-0000-0000-0000-0000000000b1"),
			BuyerName:     "Ethio Foods Ltd",
			BuyerLocation: "Addis Ababa",
			Quantity:      10,
			TotalPrice:    decimal.NewFromInt(46000),
			Status:        int(order.Pending),
			CreatedAt:     now.Add(-24 * time.Hour),
		},
		{
			ID:            uuid.MustParse("00000000-0000-0000-0000-0000000000e2"),
			ListingID:     listings[1].ID,
			BuyerID:       uuid.MustParse("00000000-0000-0000-0000-0000000000b2"),
			BuyerName:     "Fresh Market",
			BuyerLocation: "Hawassa",
			Quantity:      50,
			TotalPrice:    decimal.NewFromInt(57500),
			Status:        int(order.Pending),
			CreatedAt:     now.Add(-48 * time.Hour),
		},
	}

	deliveries := []deliveryrepo.DeliveryDTO{
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-0000000000d1"),
			OrderID:        uuid.MustParse("00000000-0000-0000-0000-0000000000e1"),
			FarmerID:       farmers[0].ID,
			FarmerName:     farmers[0].Name,
			FarmerLocation: farmers[0].Location,
			BuyerID:        uuid.MustParse("00000000-0000-0000-0000-0000000000b1"),
			BuyerName:      "Ethio Foods Ltd",
			BuyerLocation:  "Addis Ababa",
			ProductName:    "Teff",
			Quantity:       10,
			Status:         int(delivery.Pending),
			CreatedAt:      now.Add(-24 * time.Hour),
		},
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-0000000000d2"),
			OrderID:        uuid.MustParse("00000000-0000-0000-0000-0000000000e2"),
			FarmerID:       farmers[1].ID,
			FarmerName:     farmers[1].Name,
			FarmerLocation: farmers[1].Location,
			BuyerID:        uuid.MustParse("00000000-0000-0000-0000-0000000000b2"),
			BuyerName:      "Fresh Market",
			BuyerLocation:  "Hawassa",
			ProductName:    "Tomato",
			Quantity:       50,
			Status:         int(delivery.Pending),
			CreatedAt:      now.Add(-48 * time.Hour),
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&farmers).Error; err != nil {
			return err
		}
		if err := tx.Create(&listings).Error; err != nil {
			return err
		}
		if err := tx.Create(&orders).Error; err != nil {
			return err
		}
		return tx.Create(&deliveries).Error
	})
}

func seedListing(
	id string,
	productID string,
	owner farmerrepo.FarmerDTO,
	quantity int,
	pricePerUnit int64,
	createdAt time.Time,
) listingrepo.ListingDTO {
	return listingrepo.ListingDTO{
		ID:             uuid.MustParse(id),
		ProductID:      productID,
		FarmerID:       owner.ID,
		FarmerName:     owner.Name,
		FarmerLocation: owner.Location,
		Quantity:       quantity,
		PricePerUnit:   decimal.NewFromInt(pricePerUnit),
		Status:         int(listing.Available),
		CreatedAt:      createdAt,
	}
}

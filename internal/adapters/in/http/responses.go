package http

import "time"

// Session is returned when a farmer logs in.
type Session struct {
	Token      string `json:"token"`
	FarmerID   string `json:"farmerId"`
	FarmerName string `json:"farmerName"`
}

// Product is one catalog entry. Prices are decimal strings in ETB.
type Product struct {
	ID          string `json:"id"`
	NameLocal   string `json:"nameLocal"`
	NameDisplay string `json:"nameDisplay"`
	Image       string `json:"image"`
	AvgPrice    string `json:"avgPrice"`
	Unit        string `json:"unit"`
}

// Farmer is the read model of a farmer. The PIN never appears here.
type Farmer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Balance   string `json:"balance"`
	TotalSold string `json:"totalSold"`
}

// Listing is one produce offer with its farmer snapshot.
type Listing struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"productId"`
	FarmerID       string    `json:"farmerId"`
	FarmerName     string    `json:"farmerName"`
	FarmerLocation string    `json:"farmerLocation"`
	Quantity       int       `json:"quantity"`
	PricePerUnit   string    `json:"pricePerUnit"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Order is one purchase with its buyer snapshot.
type Order struct {
	ID            string    `json:"id"`
	ListingID     string    `json:"listingId"`
	BuyerID       string    `json:"buyerId"`
	BuyerName     string    `json:"buyerName"`
	BuyerLocation string    `json:"buyerLocation"`
	Quantity      int       `json:"quantity"`
	TotalPrice    string    `json:"totalPrice"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Delivery is one shipment with its party snapshots.
// DeliveredAt is null until the delivery has been confirmed.
type Delivery struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"orderId"`
	FarmerID       string     `json:"farmerId"`
	FarmerName     string     `json:"farmerName"`
	FarmerLocation string     `json:"farmerLocation"`
	BuyerID        string     `json:"buyerId"`
	BuyerName      string     `json:"buyerName"`
	BuyerLocation  string     `json:"buyerLocation"`
	ProductName    string     `json:"productName"`
	Quantity       int        `json:"quantity"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	DeliveredAt    *time.Time `json:"deliveredAt"`
}

// AuditEntry is one line of the activity log, newest first.
type AuditEntry struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	RecordedAt time.Time `json:"recordedAt"`
}

// ListingCreated is returned after a listing is published.
type ListingCreated struct {
	ID string `json:"id"`
}

// PurchaseCreated is returned after a purchase commits.
type PurchaseCreated struct {
	OrderID    string `json:"orderId"`
	DeliveryID string `json:"deliveryId"`
	BuyerID    string `json:"buyerId"`
	TotalPrice string `json:"totalPrice"`
}

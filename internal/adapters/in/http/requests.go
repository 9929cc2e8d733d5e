package http

// LoginRequest opens a session for the farmer whose PIN matches exactly.
type LoginRequest struct {
	PIN string `json:"pin" validate:"required,len=4,numeric"`
}

// CreateListingRequest publishes a new listing for the acting farmer.
// The token must belong to the session of the farmer given by FarmerID.
type CreateListingRequest struct {
	Token        string `json:"token" validate:"required"`
	FarmerID     string `json:"farmerId" validate:"required,uuid"`
	ProductID    string `json:"productId" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	PricePerUnit string `json:"pricePerUnit" validate:"required"`
}

// PurchaseRequest buys a quantity from a listing, creating the order and its
// delivery in one transaction.
type PurchaseRequest struct {
	ListingID     string `json:"listingId" validate:"required,uuid"`
	BuyerName     string `json:"buyerName" validate:"required"`
	BuyerLocation string `json:"buyerLocation" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
}

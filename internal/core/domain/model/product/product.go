// Package product holds the static produce catalog. The catalog is seeded at
// startup, read-only, and never mutated at runtime; listings reference it by
// catalog id for display attribution only.
package product

import "agrilink/internal/core/domain/model/kernel"

// Product describes one produce item in the static catalog.
// AvgPrice is a reference average market price, not a sale price.
type Product struct {
	ID          string
	NameLocal   string
	NameDisplay string
	Image       string
	AvgPrice    kernel.Money
	Unit        string
}

// Catalog returns the full static produce catalog.
// The returned slice is a copy; callers may not mutate catalog state.
func Catalog() []Product {
	return append([]Product(nil), catalog...)
}

// Find looks up a catalog product by id. The second return value reports
// whether the product exists; callers that only need display attribution are
// expected to tolerate a miss.
func Find(id string) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func mustMoney(value int64) kernel.Money {
	m, err := kernel.NewMoneyFromInt(value)
	if err != nil {
		panic(err)
	}
	return m
}

var catalog = []Product{
	{ID: "1", NameLocal: "ጤፍ", NameDisplay: "Teff", Image: "/teff.jpg", AvgPrice: mustMoney(4500), Unit: "ኩንታል"},
	{ID: "2", NameLocal: "ቲማቲም", NameDisplay: "Tomato", Image: "/tomato.jpg", AvgPrice: mustMoney(1200), Unit: "ኪሎ"},
	{ID: "3", NameLocal: "ሽንኩርት", NameDisplay: "Onion", Image: "/onion.jpg", AvgPrice: mustMoney(800), Unit: "ኪሎ"},
	{ID: "4", NameLocal: "ድንች", NameDisplay: "Potato", Image: "/potato.jpg", AvgPrice: mustMoney(600), Unit: "ኪሎ"},
	{ID: "5", NameLocal: "ሙዝ", NameDisplay: "Banana", Image: "/banana.jpg", AvgPrice: mustMoney(400), Unit: "ኪሎ"},
	{ID: "6", NameLocal: "አቫካዶ", NameDisplay: "Avocado", Image: "/avocado.jpg", AvgPrice: mustMoney(350), Unit: "ኪሎ"},
}

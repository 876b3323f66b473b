package domain

import "time"

// AssetCategories is the closed set of hardware categories an asset may have.
var AssetCategories = []string{
	"Laptop",
	"Desktop",
	"Keyboard",
	"Mouse",
	"Monitor",
	"Headset",
	"Printer",
	"Mobile",
	"Tablet",
	"Server",
}

// ValidCategory reports whether category is one of AssetCategories.
func ValidCategory(category string) bool {
	for _, c := range AssetCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Asset is a tracked piece of hardware. UserID records who created the
// record; it carries no authorization weight (any authenticated user may
// update any asset, only deletion is role-gated).
type Asset struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"`
	Comments       string    `json:"comments,omitempty"`
	UserID         string    `json:"user_id"`
	CustomerID     string    `json:"customer_id,omitempty"`
	ManufacturerID string    `json:"manufacturer_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Customer is a party assets are assigned to.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Manufacturer is a hardware vendor referenced by assets.
type Manufacturer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

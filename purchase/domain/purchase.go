package domain

import (
	"strings"
	"time"
)

// Category is the closed set of grocery categories. The store enforces no
// referential integrity, so an unknown category on a stored document is a
// display-only defect, never a write-time error.
type Category string

const (
	CategoryDairy        Category = "Dairy"
	CategoryProduce      Category = "Produce"
	CategoryGrains       Category = "Grains"
	CategoryBakery       Category = "Bakery"
	CategorySnacks       Category = "Snacks"
	CategoryBeverages    Category = "Beverages"
	CategoryMeat         Category = "Meat"
	CategoryFrozen       Category = "Frozen"
	CategoryHousehold    Category = "Household"
	CategoryPersonalCare Category = "Personal Care"
	CategoryOther        Category = "Other"
)

// Categories lists every known category, in display order.
var Categories = []Category{
	CategoryDairy,
	CategoryProduce,
	CategoryGrains,
	CategoryBakery,
	CategorySnacks,
	CategoryBeverages,
	CategoryMeat,
	CategoryFrozen,
	CategoryHousehold,
	CategoryPersonalCare,
	CategoryOther,
}

// IsKnownCategory reports whether c is part of the closed category set.
func IsKnownCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// NormalizeName produces the stable join key for an item name: lowercase,
// trimmed. Display casing is kept separately on DisplayName.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Purchase is one bought line item, optionally linked to a bill.
type Purchase struct {
	ID             string    `firestore:"-" json:"id"`
	NormalizedName string    `firestore:"normalizedName" json:"normalizedName"`
	DisplayName    string    `firestore:"displayName" json:"displayName"`
	Price          float64   `firestore:"price" json:"price"`
	Category       Category  `firestore:"category" json:"category"`
	PurchaseDate   time.Time `firestore:"purchaseDate" json:"purchaseDate"`
	UserID         string    `firestore:"userId" json:"userId"`
	BillID         string    `firestore:"billId,omitempty" json:"billId,omitempty"`
	Quantity       float64   `firestore:"quantity,omitempty" json:"quantity,omitempty"`
	Unit           string    `firestore:"unit,omitempty" json:"unit,omitempty"`
}

// PurchasePatch holds the editable purchase fields for the item edit flow.
// Editing never reconciles the unique-item rollup: PurchaseCount is a
// historical counter and last-seen fields reflect saves, not edits.
type PurchasePatch struct {
	DisplayName string
	Price       float64
	Category    Category
	Quantity    float64
	Unit        string
}

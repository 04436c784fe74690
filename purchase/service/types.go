package service

import "time"

// SavePurchaseRequest is the quick-add payload. Price arrives as text so the
// client can submit either a plain number or a formatted money string.
type SavePurchaseRequest struct {
	UserID       string    `json:"-"`
	DisplayName  string    `json:"displayName" validate:"required"`
	Price        string    `json:"price" validate:"required"`
	Category     string    `json:"category" validate:"required"`
	PurchaseDate time.Time `json:"purchaseDate" validate:"required"`
	Quantity     float64   `json:"quantity" validate:"gte=0"`
	Unit         string    `json:"unit"`
}

type SavePurchaseResponse struct {
	PurchaseID string `json:"purchaseId"`
}

// BillLineRequest is one line of a bill submission.
type BillLineRequest struct {
	DisplayName string  `json:"displayName" validate:"required"`
	Price       string  `json:"price" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Unit        string  `json:"unit"`
}

type UpdatePurchaseRequest struct {
	UserID      string  `json:"-"`
	PurchaseID  string  `json:"-"`
	DisplayName string  `json:"displayName" validate:"required"`
	Price       string  `json:"price" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Unit        string  `json:"unit"`
}

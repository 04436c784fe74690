package service

import (
	"time"

	purchaseService "github.com/daphne-i/pantrypal/purchase/service"
)

// CreateBillRequest submits a shopping trip with its line items. TotalAmount
// is optional text; when empty the bill stores an explicit null.
type CreateBillRequest struct {
	UserID       string                            `json:"-"`
	ShopName     string                            `json:"shopName" validate:"required"`
	PurchaseDate time.Time                         `json:"purchaseDate" validate:"required"`
	TotalAmount  string                            `json:"totalAmount"`
	Lines        []purchaseService.BillLineRequest `json:"lines"`
}

type CreateBillResponse struct {
	BillID      string   `json:"billId"`
	PurchaseIDs []string `json:"purchaseIds"`
}

// UpdateBillRequest patches bill metadata. Absent fields stay untouched;
// line items are edited through the purchase endpoints.
type UpdateBillRequest struct {
	UserID       string     `json:"-"`
	BillID       string     `json:"-"`
	ShopName     *string    `json:"shopName"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	TotalAmount  *string    `json:"totalAmount"`
}

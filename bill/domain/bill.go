package domain

import "time"

// Bill is a single shopping-trip record aggregating one or more purchases.
// ItemCount is a denormalized counter maintained by the write operations
// that create and delete purchases; the store has no triggers to do it.
type Bill struct {
	ID           string    `firestore:"-" json:"id"`
	ShopName     string    `firestore:"shopName" json:"shopName"`
	PurchaseDate time.Time `firestore:"purchaseDate" json:"purchaseDate"`
	TotalAmount  *float64  `firestore:"totalAmount" json:"totalAmount"`
	ItemCount    int64     `firestore:"itemCount" json:"itemCount"`
	UserID       string    `firestore:"userId" json:"userId"`
}

// BillPatch holds the editable bill fields. Item count is never patched
// directly; it only moves by atomic increments from purchase writes.
type BillPatch struct {
	ShopName     *string
	PurchaseDate *time.Time
	TotalAmount  *float64
}

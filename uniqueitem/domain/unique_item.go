package domain

import (
	"time"

	purchaseDomain "github.com/daphne-i/pantrypal/purchase/domain"
)

// UniqueItem is the per-user rollup of purchase history, keyed by the
// normalized item name (the document id). PurchaseCount is cumulative and
// monotonic: it is incremented on every purchase save and never decremented,
// even when individual purchases are later deleted or edited.
type UniqueItem struct {
	ID                  string                  `firestore:"-" json:"id"`
	DisplayName         string                  `firestore:"displayName" json:"displayName"`
	Category            purchaseDomain.Category `firestore:"category" json:"category"`
	LastPurchaseDate    time.Time               `firestore:"lastPurchaseDate" json:"lastPurchaseDate"`
	LastPrice           float64                 `firestore:"lastPrice" json:"lastPrice"`
	PurchaseCount       int64                   `firestore:"purchaseCount" json:"purchaseCount"`
	IsMarkedForShopping bool                    `firestore:"isMarkedForShopping" json:"isMarkedForShopping"`
}

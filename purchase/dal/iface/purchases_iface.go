package iface

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/daphne-i/pantrypal/purchase/domain"
)

//go:generate mockery --name Purchases --output=../mocks
type Purchases interface {
	Get(ctx context.Context, userID, purchaseID string) (*domain.Purchase, error)
	GetRef(ctx context.Context, userID, purchaseID string) *firestore.DocumentRef
	ListAll(ctx context.Context, userID string) ([]*domain.Purchase, error)
	ListByBill(ctx context.Context, userID, billID string) ([]*domain.Purchase, error)
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.Purchase, error)
	CreateWithRollup(ctx context.Context, userID string, purchase *domain.Purchase) (string, error)
	CreateLines(ctx context.Context, userID, billID string, purchases []*domain.Purchase) ([]string, error)
	Update(ctx context.Context, userID, purchaseID string, patch domain.PurchasePatch) error
	DeleteWithBillDecrement(ctx context.Context, userID, purchaseID, billID string) error
}

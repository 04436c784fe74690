package iface

import (
	"context"

	"github.com/daphne-i/pantrypal/bill/domain"
)

//go:generate mockery --name Bills --output=../mocks
type Bills interface {
	Get(ctx context.Context, userID, billID string) (*domain.Bill, error)
	ListAll(ctx context.Context, userID string) ([]*domain.Bill, error)
	Create(ctx context.Context, userID string, bill *domain.Bill) (string, error)
	Update(ctx context.Context, userID, billID string, patch domain.BillPatch) error
	DeleteCascade(ctx context.Context, userID, billID string) error
}

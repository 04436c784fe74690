package iface

import (
	"context"

	"github.com/daphne-i/pantrypal/uniqueitem/domain"
)

//go:generate mockery --name UniqueItems --output=../mocks
type UniqueItems interface {
	Get(ctx context.Context, userID, normalizedName string) (*domain.UniqueItem, error)
	List(ctx context.Context, userID string) ([]*domain.UniqueItem, error)
	ListMarked(ctx context.Context, userID string) ([]*domain.UniqueItem, error)
	SetShoppingFlag(ctx context.Context, userID, normalizedName string, marked bool) error
}

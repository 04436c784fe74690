package iface

import (
	"context"

	"github.com/daphne-i/pantrypal/profile/domain"
)

//go:generate mockery --name Profiles --output=../mocks
type Profiles interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Save(ctx context.Context, userID string, fields map[string]interface{}, merge bool) error
}

package iface

import (
	"context"

	"github.com/daphne-i/pantrypal/backup/domain"
)

//go:generate mockery --name Backups --output=../mocks
type Backups interface {
	DumpCollection(ctx context.Context, userID, collection string) ([]domain.RawDoc, error)
	ReplaceCollections(ctx context.Context, userID string, collections map[string][]domain.RawDoc) error
}

package iface

import (
	"context"

	"cloud.google.com/go/firestore"
)

// DocumentSnapshot abstracts a firestore document snapshot so DALs can be
// tested without a live store.
type DocumentSnapshot interface {
	DataTo(v interface{}) error
	ID() string
	Exists() bool
	Snapshot() *firestore.DocumentSnapshot
}

//go:generate mockery --name DocumentsHandler --output=../mocks
type DocumentsHandler interface {
	Get(ctx context.Context, ref *firestore.DocumentRef) (DocumentSnapshot, error)
	GetAll(iter *firestore.DocumentIterator) ([]DocumentSnapshot, error)
}

// Package fsdal holds the shared Firestore data-access plumbing: snapshot
// abstractions for testability, not-found error mapping, the user-scoped
// collection layout and the chunked write batch.
package fsdal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/daphne-i/pantrypal/fsdal/iface"
)

// ErrNotFound is returned when the requested document does not exist.
var ErrNotFound = errors.New("document not found")

type documentSnapshot struct {
	snap *firestore.DocumentSnapshot
}

func (d documentSnapshot) DataTo(v interface{}) error {
	return d.snap.DataTo(v)
}

func (d documentSnapshot) ID() string {
	return d.snap.Ref.ID
}

func (d documentSnapshot) Exists() bool {
	return d.snap.Exists()
}

func (d documentSnapshot) Snapshot() *firestore.DocumentSnapshot {
	return d.snap
}

// DocumentHandler is the live-store implementation of iface.DocumentsHandler.
type DocumentHandler struct{}

func (DocumentHandler) Get(ctx context.Context, ref *firestore.DocumentRef) (iface.DocumentSnapshot, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return documentSnapshot{snap}, nil
}

func (DocumentHandler) GetAll(iter *firestore.DocumentIterator) ([]iface.DocumentSnapshot, error) {
	snaps, err := iter.GetAll()
	if err != nil {
		return nil, err
	}

	docs := make([]iface.DocumentSnapshot, len(snaps))
	for i, snap := range snaps {
		docs[i] = documentSnapshot{snap}
	}

	return docs, nil
}

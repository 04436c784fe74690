package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/daphne-i/pantrypal/backup/domain"
	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/fsdal"
	fsdalIface "github.com/daphne-i/pantrypal/fsdal/iface"
)

var ErrInvalidUserID = errors.New("user id cannot be empty")

// BackupsFirestore dumps and restores whole per-user collections. It treats
// documents as opaque field maps; schema belongs to the feature DALs.
type BackupsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   fsdalIface.DocumentsHandler
}

// NewBackupsFirestore returns a new BackupsFirestore with the given project id.
func NewBackupsFirestore(ctx context.Context, projectID string) (*BackupsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewBackupsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewBackupsFirestoreWithClient returns a new BackupsFirestore using the given client.
func NewBackupsFirestoreWithClient(fun connection.FirestoreFromContextFun) *BackupsFirestore {
	return &BackupsFirestore{
		firestoreClientFun: fun,
		documentsHandler:   fsdal.DocumentHandler{},
	}
}

func (d *BackupsFirestore) collection(ctx context.Context, userID, name string) *firestore.CollectionRef {
	return fsdal.UserCollection(d.firestoreClientFun(ctx), userID, name)
}

// DumpCollection reads every document of one user collection as raw fields.
func (d *BackupsFirestore) DumpCollection(ctx context.Context, userID, collection string) ([]domain.RawDoc, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	snaps, err := d.documentsHandler.GetAll(d.collection(ctx, userID, collection).Documents(ctx))
	if err != nil {
		return nil, err
	}

	docs := make([]domain.RawDoc, 0, len(snaps))

	for _, snap := range snaps {
		docs = append(docs, domain.RawDoc{
			ID:   snap.ID(),
			Data: snap.Snapshot().Data(),
		})
	}

	return docs, nil
}

// ReplaceCollections overwrites the given collections with the provided
// documents: existing documents are deleted first, then the restored set is
// written. Batches are chunked, so a very large restore is atomic per chunk
// rather than end to end.
func (d *BackupsFirestore) ReplaceCollections(ctx context.Context, userID string, collections map[string][]domain.RawDoc) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	fs := d.firestoreClientFun(ctx)
	batch := fsdal.NewAutomaticWriteBatch(fs, 0)

	for name, docs := range collections {
		coll := d.collection(ctx, userID, name)

		existing, err := d.documentsHandler.GetAll(coll.Documents(ctx))
		if err != nil {
			return err
		}

		restored := make(map[string]bool, len(docs))
		for _, doc := range docs {
			restored[doc.ID] = true
		}

		// drop documents the export does not contain
		for _, snap := range existing {
			if !restored[snap.ID()] {
				batch.Delete(coll.Doc(snap.ID()))
			}
		}

		for _, doc := range docs {
			batch.Set(coll.Doc(doc.ID), doc.Data)
		}
	}

	return batch.Commit(ctx)
}

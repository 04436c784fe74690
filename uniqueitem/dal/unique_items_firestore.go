package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/fsdal"
	fsdalIface "github.com/daphne-i/pantrypal/fsdal/iface"
	"github.com/daphne-i/pantrypal/uniqueitem/domain"
)

var (
	ErrInvalidUserID   = errors.New("user id cannot be empty")
	ErrInvalidItemName = errors.New("item name cannot be empty")
)

// UniqueItemsFirestore is used to interact with the unique-items rollup
// collection on Firestore. Documents are keyed by normalized item name and
// written by the purchase save path; this layer only reads and flags them.
type UniqueItemsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   fsdalIface.DocumentsHandler
}

// NewUniqueItemsFirestore returns a new UniqueItemsFirestore with the given project id.
func NewUniqueItemsFirestore(ctx context.Context, projectID string) (*UniqueItemsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewUniqueItemsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewUniqueItemsFirestoreWithClient returns a new UniqueItemsFirestore using the given client.
func NewUniqueItemsFirestoreWithClient(fun connection.FirestoreFromContextFun) *UniqueItemsFirestore {
	return &UniqueItemsFirestore{
		firestoreClientFun: fun,
		documentsHandler:   fsdal.DocumentHandler{},
	}
}

func (d *UniqueItemsFirestore) collection(ctx context.Context, userID string) *firestore.CollectionRef {
	return fsdal.UserCollection(d.firestoreClientFun(ctx), userID, fsdal.UniqueItemsCollection)
}

func (d *UniqueItemsFirestore) Get(ctx context.Context, userID, normalizedName string) (*domain.UniqueItem, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	if normalizedName == "" {
		return nil, ErrInvalidItemName
	}

	snap, err := d.documentsHandler.Get(ctx, d.collection(ctx, userID).Doc(normalizedName))
	if err != nil {
		return nil, err
	}

	var item domain.UniqueItem
	if err := snap.DataTo(&item); err != nil {
		return nil, err
	}

	item.ID = snap.ID()

	return &item, nil
}

// List returns the full pantry, most recently purchased first.
func (d *UniqueItemsFirestore) List(ctx context.Context, userID string) ([]*domain.UniqueItem, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	iter := d.collection(ctx, userID).
		OrderBy("lastPurchaseDate", firestore.Desc).
		Documents(ctx)

	return d.toUniqueItems(iter)
}

// ListMarked returns the current shopping list.
func (d *UniqueItemsFirestore) ListMarked(ctx context.Context, userID string) ([]*domain.UniqueItem, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	iter := d.collection(ctx, userID).
		Where("isMarkedForShopping", "==", true).
		Documents(ctx)

	return d.toUniqueItems(iter)
}

func (d *UniqueItemsFirestore) toUniqueItems(iter *firestore.DocumentIterator) ([]*domain.UniqueItem, error) {
	snaps, err := d.documentsHandler.GetAll(iter)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.UniqueItem, 0, len(snaps))

	for _, snap := range snaps {
		var item domain.UniqueItem
		if err := snap.DataTo(&item); err != nil {
			return nil, err
		}

		item.ID = snap.ID()
		items = append(items, &item)
	}

	return items, nil
}

// SetShoppingFlag writes the absolute flag value, so repeating the same
// request is a no-op rather than a toggle.
func (d *UniqueItemsFirestore) SetShoppingFlag(ctx context.Context, userID, normalizedName string, marked bool) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	if normalizedName == "" {
		return ErrInvalidItemName
	}

	_, err := d.collection(ctx, userID).Doc(normalizedName).Update(ctx, []firestore.Update{
		{Path: "isMarkedForShopping", Value: marked},
	})

	return err
}

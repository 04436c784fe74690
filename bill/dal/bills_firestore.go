package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/daphne-i/pantrypal/bill/domain"
	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/fsdal"
	fsdalIface "github.com/daphne-i/pantrypal/fsdal/iface"
)

var (
	ErrInvalidUserID = errors.New("user id cannot be empty")
	ErrInvalidBillID = errors.New("bill id cannot be empty")
	ErrEmptyPatch    = errors.New("bill patch contains no fields")
)

// BillsFirestore is used to interact with the bills collection on Firestore.
type BillsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   fsdalIface.DocumentsHandler
}

// NewBillsFirestore returns a new BillsFirestore with the given project id.
func NewBillsFirestore(ctx context.Context, projectID string) (*BillsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewBillsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewBillsFirestoreWithClient returns a new BillsFirestore using the given client.
func NewBillsFirestoreWithClient(fun connection.FirestoreFromContextFun) *BillsFirestore {
	return &BillsFirestore{
		firestoreClientFun: fun,
		documentsHandler:   fsdal.DocumentHandler{},
	}
}

func (d *BillsFirestore) billsCollection(ctx context.Context, userID string) *firestore.CollectionRef {
	return fsdal.UserCollection(d.firestoreClientFun(ctx), userID, fsdal.BillsCollection)
}

func (d *BillsFirestore) purchasesCollection(ctx context.Context, userID string) *firestore.CollectionRef {
	return fsdal.UserCollection(d.firestoreClientFun(ctx), userID, fsdal.PurchasesCollection)
}

func (d *BillsFirestore) Get(ctx context.Context, userID, billID string) (*domain.Bill, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	if billID == "" {
		return nil, ErrInvalidBillID
	}

	snap, err := d.documentsHandler.Get(ctx, d.billsCollection(ctx, userID).Doc(billID))
	if err != nil {
		return nil, err
	}

	var bill domain.Bill
	if err := snap.DataTo(&bill); err != nil {
		return nil, err
	}

	bill.ID = snap.ID()

	return &bill, nil
}

func (d *BillsFirestore) ListAll(ctx context.Context, userID string) ([]*domain.Bill, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	iter := d.billsCollection(ctx, userID).
		OrderBy("purchaseDate", firestore.Desc).
		Documents(ctx)

	snaps, err := d.documentsHandler.GetAll(iter)
	if err != nil {
		return nil, err
	}

	bills := make([]*domain.Bill, 0, len(snaps))

	for _, snap := range snaps {
		var bill domain.Bill
		if err := snap.DataTo(&bill); err != nil {
			return nil, err
		}

		bill.ID = snap.ID()
		bills = append(bills, &bill)
	}

	return bills, nil
}

// Create stores a new bill and returns its generated id. Item count starts
// at zero; the purchase-line writes move it by atomic increments.
func (d *BillsFirestore) Create(ctx context.Context, userID string, bill *domain.Bill) (string, error) {
	if userID == "" {
		return "", ErrInvalidUserID
	}

	ref := d.billsCollection(ctx, userID).NewDoc()

	if _, err := ref.Create(ctx, bill); err != nil {
		return "", err
	}

	return ref.ID, nil
}

// Update patches only the fields set on the patch. Item count is not
// patchable here; it moves exclusively by atomic increments.
func (d *BillsFirestore) Update(ctx context.Context, userID, billID string, patch domain.BillPatch) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	if billID == "" {
		return ErrInvalidBillID
	}

	var updates []firestore.Update

	if patch.ShopName != nil {
		updates = append(updates, firestore.Update{Path: "shopName", Value: *patch.ShopName})
	}

	if patch.PurchaseDate != nil {
		updates = append(updates, firestore.Update{Path: "purchaseDate", Value: *patch.PurchaseDate})
	}

	if patch.TotalAmount != nil {
		updates = append(updates, firestore.Update{Path: "totalAmount", Value: *patch.TotalAmount})
	}

	if len(updates) == 0 {
		return ErrEmptyPatch
	}

	_, err := d.billsCollection(ctx, userID).Doc(billID).Update(ctx, updates)

	return err
}

// DeleteCascade removes the bill and every purchase that references it. The
// unique-item rollups are deliberately untouched: purchase counts are
// historical and never go down. Batches are chunked, so a cascade larger
// than one chunk is atomic per chunk only.
func (d *BillsFirestore) DeleteCascade(ctx context.Context, userID, billID string) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	if billID == "" {
		return ErrInvalidBillID
	}

	fs := d.firestoreClientFun(ctx)

	iter := d.purchasesCollection(ctx, userID).
		Where("billId", "==", billID).
		Documents(ctx)

	snaps, err := d.documentsHandler.GetAll(iter)
	if err != nil {
		return err
	}

	batch := fsdal.NewAutomaticWriteBatch(fs, 0)

	for _, snap := range snaps {
		batch.Delete(d.purchasesCollection(ctx, userID).Doc(snap.ID()))
	}

	batch.Delete(d.billsCollection(ctx, userID).Doc(billID))

	return batch.Commit(ctx)
}

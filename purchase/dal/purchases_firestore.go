package dal

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/fsdal"
	fsdalIface "github.com/daphne-i/pantrypal/fsdal/iface"
	"github.com/daphne-i/pantrypal/purchase/domain"
)

// A purchase line costs two batch writes (create + rollup upsert) and the
// bill increment costs one more, so this keeps CreateLines inside a single
// 500-operation firestore batch.
const maxLinesPerBatch = 249

var (
	ErrInvalidUserID     = errors.New("user id cannot be empty")
	ErrInvalidPurchaseID = errors.New("purchase id cannot be empty")
	ErrNoLines           = errors.New("no purchase lines provided")
	ErrTooManyLines      = errors.New("too many purchase lines for one atomic batch")
)

// PurchasesFirestore is used to interact with the purchases collection and
// its unique-item rollup stored on Firestore.
type PurchasesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   fsdalIface.DocumentsHandler
}

// NewPurchasesFirestore returns a new PurchasesFirestore with the given project id.
func NewPurchasesFirestore(ctx context.Context, projectID string) (*PurchasesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewPurchasesFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewPurchasesFirestoreWithClient returns a new PurchasesFirestore using the given client.
func NewPurchasesFirestoreWithClient(fun connection.FirestoreFromContextFun) *PurchasesFirestore {
	return &PurchasesFirestore{
		firestoreClientFun: fun,
		documentsHandler:   fsdal.DocumentHandler{},
	}
}

func (d *PurchasesFirestore) purchasesCollection(ctx context.Context, userID string) *firestore.CollectionRef {
	return fsdal.UserCollection(d.firestoreClientFun(ctx), userID, fsdal.PurchasesCollection)
}

func (d *PurchasesFirestore) uniqueItemsCollection(ctx context.Context, userID string) *firestore.CollectionRef {
	return fsdal.UserCollection(d.firestoreClientFun(ctx), userID, fsdal.UniqueItemsCollection)
}

func (d *PurchasesFirestore) billRef(ctx context.Context, userID, billID string) *firestore.DocumentRef {
	return fsdal.UserCollection(d.firestoreClientFun(ctx), userID, fsdal.BillsCollection).Doc(billID)
}

// GetRef returns the document reference of a purchase.
func (d *PurchasesFirestore) GetRef(ctx context.Context, userID, purchaseID string) *firestore.DocumentRef {
	return d.purchasesCollection(ctx, userID).Doc(purchaseID)
}

func (d *PurchasesFirestore) Get(ctx context.Context, userID, purchaseID string) (*domain.Purchase, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	if purchaseID == "" {
		return nil, ErrInvalidPurchaseID
	}

	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx, userID, purchaseID))
	if err != nil {
		return nil, err
	}

	var purchase domain.Purchase
	if err := snap.DataTo(&purchase); err != nil {
		return nil, err
	}

	purchase.ID = snap.ID()

	return &purchase, nil
}

func (d *PurchasesFirestore) ListAll(ctx context.Context, userID string) ([]*domain.Purchase, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	iter := d.purchasesCollection(ctx, userID).
		OrderBy("purchaseDate", firestore.Desc).
		Documents(ctx)

	return d.toPurchases(iter)
}

func (d *PurchasesFirestore) ListByBill(ctx context.Context, userID, billID string) ([]*domain.Purchase, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	iter := d.purchasesCollection(ctx, userID).
		Where("billId", "==", billID).
		Documents(ctx)

	return d.toPurchases(iter)
}

func (d *PurchasesFirestore) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.Purchase, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	iter := d.purchasesCollection(ctx, userID).
		Where("purchaseDate", ">=", from).
		Where("purchaseDate", "<", to).
		OrderBy("purchaseDate", firestore.Desc).
		Documents(ctx)

	return d.toPurchases(iter)
}

func (d *PurchasesFirestore) toPurchases(iter *firestore.DocumentIterator) ([]*domain.Purchase, error) {
	snaps, err := d.documentsHandler.GetAll(iter)
	if err != nil {
		return nil, err
	}

	purchases := make([]*domain.Purchase, 0, len(snaps))

	for _, snap := range snaps {
		var purchase domain.Purchase
		if err := snap.DataTo(&purchase); err != nil {
			return nil, err
		}

		purchase.ID = snap.ID()
		purchases = append(purchases, &purchase)
	}

	return purchases, nil
}

// rollupData builds the merge-upsert for the unique-item document keyed by
// the purchase's normalized name. The counter moves by a blind atomic delta;
// it is never read first.
func rollupData(purchase *domain.Purchase) map[string]interface{} {
	return map[string]interface{}{
		"displayName":      purchase.DisplayName,
		"category":         purchase.Category,
		"lastPrice":        purchase.Price,
		"lastPurchaseDate": purchase.PurchaseDate,
		"purchaseCount":    firestore.Increment(1),
	}
}

// CreateWithRollup inserts the purchase and upserts its unique-item rollup
// in one atomic batch: both writes succeed or both fail.
func (d *PurchasesFirestore) CreateWithRollup(ctx context.Context, userID string, purchase *domain.Purchase) (string, error) {
	if userID == "" {
		return "", ErrInvalidUserID
	}

	fs := d.firestoreClientFun(ctx)

	purchaseRef := d.purchasesCollection(ctx, userID).NewDoc()
	uniqueItemRef := d.uniqueItemsCollection(ctx, userID).Doc(purchase.NormalizedName)

	batch := fs.Batch()
	batch.Create(purchaseRef, purchase)
	batch.Set(uniqueItemRef, rollupData(purchase), firestore.MergeAll)

	if _, err := batch.Commit(ctx); err != nil {
		return "", err
	}

	return purchaseRef.ID, nil
}

// CreateLines inserts one purchase per line, upserts the matching unique-item
// rollups and bumps the parent bill's item count by the line count, all in a
// single atomic batch. Partial success is not possible.
func (d *PurchasesFirestore) CreateLines(ctx context.Context, userID, billID string, purchases []*domain.Purchase) ([]string, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	if len(purchases) == 0 {
		return nil, ErrNoLines
	}

	if len(purchases) > maxLinesPerBatch {
		return nil, ErrTooManyLines
	}

	fs := d.firestoreClientFun(ctx)
	batch := fs.Batch()

	ids := make([]string, 0, len(purchases))

	for _, purchase := range purchases {
		purchaseRef := d.purchasesCollection(ctx, userID).NewDoc()
		uniqueItemRef := d.uniqueItemsCollection(ctx, userID).Doc(purchase.NormalizedName)

		batch.Create(purchaseRef, purchase)
		batch.Set(uniqueItemRef, rollupData(purchase), firestore.MergeAll)

		ids = append(ids, purchaseRef.ID)
	}

	if billID != "" {
		batch.Update(d.billRef(ctx, userID, billID), []firestore.Update{
			{Path: "itemCount", Value: firestore.Increment(len(purchases))},
		})
	}

	if _, err := batch.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

// Update patches the editable fields of a purchase. It deliberately leaves
// the unique-item rollup untouched: last-seen fields and the purchase
// counter track saves, not edits.
func (d *PurchasesFirestore) Update(ctx context.Context, userID, purchaseID string, patch domain.PurchasePatch) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	if purchaseID == "" {
		return ErrInvalidPurchaseID
	}

	updates := []firestore.Update{
		{Path: "displayName", Value: patch.DisplayName},
		{Path: "normalizedName", Value: domain.NormalizeName(patch.DisplayName)},
		{Path: "price", Value: patch.Price},
		{Path: "category", Value: patch.Category},
		{Path: "quantity", Value: patch.Quantity},
		{Path: "unit", Value: patch.Unit},
	}

	_, err := d.GetRef(ctx, userID, purchaseID).Update(ctx, updates)

	return err
}

// DeleteWithBillDecrement deletes the purchase and, when it belongs to a
// bill, decrements the bill's item count in the same atomic batch. Splitting
// the two writes would risk counter drift on a crash in between.
func (d *PurchasesFirestore) DeleteWithBillDecrement(ctx context.Context, userID, purchaseID, billID string) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	if purchaseID == "" {
		return ErrInvalidPurchaseID
	}

	fs := d.firestoreClientFun(ctx)

	batch := fs.Batch()
	batch.Delete(d.GetRef(ctx, userID, purchaseID))

	if billID != "" {
		batch.Update(d.billRef(ctx, userID, billID), []firestore.Update{
			{Path: "itemCount", Value: firestore.Increment(-1)},
		})
	}

	_, err := batch.Commit(ctx)

	return err
}

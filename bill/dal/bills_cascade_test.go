package dal

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/daphne-i/pantrypal/bill/domain"
	"github.com/daphne-i/pantrypal/common"
	"github.com/daphne-i/pantrypal/fsdal"
)

func setupBills(t *testing.T) (*BillsFirestore, *firestore.Client) {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("set FIRESTORE_EMULATOR_HOST to run store-backed tests")
	}

	fs, err := firestore.NewClient(context.Background(),
		common.TestProjectID,
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		t.Fatal(err)
	}

	d := NewBillsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	)

	return d, fs
}

func TestBillsFirestore_DeleteCascade_RemovesChildren(t *testing.T) {
	ctx := context.Background()
	d, fs := setupBills(t)

	userID := uuid.NewString()
	purchaseDate := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

	billID, err := d.Create(ctx, userID, &domain.Bill{
		ShopName:     "Big Bazaar",
		PurchaseDate: purchaseDate,
		ItemCount:    3,
		UserID:       userID,
	})
	assert.NoError(t, err)

	purchases := fsdal.UserCollection(fs, userID, fsdal.PurchasesCollection)

	for _, name := range []string{"Milk", "Bread", "Paneer"} {
		_, err := purchases.NewDoc().Create(ctx, map[string]interface{}{
			"displayName":  name,
			"billId":       billID,
			"purchaseDate": purchaseDate,
		})
		assert.NoError(t, err)
	}

	standaloneRef := purchases.NewDoc()
	_, err = standaloneRef.Create(ctx, map[string]interface{}{
		"displayName":  "Apples",
		"billId":       "",
		"purchaseDate": purchaseDate,
	})
	assert.NoError(t, err)

	assert.NoError(t, d.DeleteCascade(ctx, userID, billID))

	// no purchase references the bill anymore and the bill is gone
	remaining, err := purchases.Where("billId", "==", billID).Documents(ctx).GetAll()
	assert.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = d.Get(ctx, userID, billID)
	assert.ErrorIs(t, err, fsdal.ErrNotFound)

	standaloneSnap, err := standaloneRef.Get(ctx)
	assert.NoError(t, err)
	assert.True(t, standaloneSnap.Exists())
}

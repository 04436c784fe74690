package dal

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/daphne-i/pantrypal/fsdal/iface"
	"github.com/daphne-i/pantrypal/fsdal/mocks"
	"github.com/daphne-i/pantrypal/purchase/domain"
)

func TestPurchasesFirestore_NewPurchasesFirestore(t *testing.T) {
	_, err := NewPurchasesFirestore(context.Background(), "pantrypal-dev")
	assert.NoError(t, err)

	d := NewPurchasesFirestoreWithClient(nil)
	assert.NotNil(t, d)
}

func TestPurchasesFirestore_Get_Validation(t *testing.T) {
	d := NewPurchasesFirestoreWithClient(nil)

	_, err := d.Get(context.Background(), "", "purchase-1")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	_, err = d.Get(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, ErrInvalidPurchaseID)
}

func TestPurchasesFirestore_ListAll(t *testing.T) {
	purchaseDate := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

	type fields struct {
		fsClient   firestore.Client
		docHandler mocks.DocumentsHandler
	}

	tests := []struct {
		name    string
		fields  fields
		want    []*domain.Purchase
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "list purchases ordered by date",
			want: []*domain.Purchase{
				{
					ID:             "purchase-1",
					NormalizedName: "milk",
					DisplayName:    "Milk",
					Price:          45.50,
					Category:       domain.CategoryDairy,
					PurchaseDate:   purchaseDate,
					UserID:         "user-1",
				},
			},
			wantErr: false,
			on: func(f *fields) {
				f.docHandler.On("GetAll", mock.Anything).
					Return(func() []iface.DocumentSnapshot {
						snap := &mocks.DocumentSnapshot{}
						snap.On("DataTo", mock.Anything).Return(nil).
							Run(func(args mock.Arguments) {
								arg := args.Get(0).(*domain.Purchase)
								*arg = domain.Purchase{
									NormalizedName: "milk",
									DisplayName:    "Milk",
									Price:          45.50,
									Category:       domain.CategoryDairy,
									PurchaseDate:   purchaseDate,
									UserID:         "user-1",
								}
							}).Once()
						snap.On("ID").Return("purchase-1").Once()
						return []iface.DocumentSnapshot{
							snap,
						}
					}(), nil).
					Once()
			},
		},
		{
			name:    "doc handler returns error",
			want:    nil,
			wantErr: true,
			on: func(f *fields) {
				f.docHandler.On("GetAll", mock.Anything).
					Return(nil, errors.New("err")).
					Once()
			},
		},
		{
			name:    "unable to decode document",
			want:    nil,
			wantErr: true,
			on: func(f *fields) {
				f.docHandler.On("GetAll", mock.Anything).
					Return(func() []iface.DocumentSnapshot {
						snap := &mocks.DocumentSnapshot{}
						snap.On("DataTo", mock.Anything).Return(errors.New("err"))
						return []iface.DocumentSnapshot{
							snap,
						}
					}(), nil).
					Once()
			},
		},
	}

	for i := range tests {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			tt.on(&tt.fields)

			d := &PurchasesFirestore{
				firestoreClientFun: func(ctx context.Context) *firestore.Client {
					return &tt.fields.fsClient
				},
				documentsHandler: &tt.fields.docHandler,
			}

			got, err := d.ListAll(context.Background(), "user-1")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equalf(t, tt.want, got, "ListAll")
		})
	}
}

func TestPurchasesFirestore_ListByBill(t *testing.T) {
	type fields struct {
		fsClient   firestore.Client
		docHandler mocks.DocumentsHandler
	}

	f := fields{}
	f.docHandler.On("GetAll", mock.Anything).
		Return(func() []iface.DocumentSnapshot {
			snap := &mocks.DocumentSnapshot{}
			snap.On("DataTo", mock.Anything).Return(nil).
				Run(func(args mock.Arguments) {
					arg := args.Get(0).(*domain.Purchase)
					*arg = domain.Purchase{
						NormalizedName: "bread",
						DisplayName:    "Bread",
						BillID:         "bill-1",
					}
				}).Once()
			snap.On("ID").Return("purchase-2").Once()
			return []iface.DocumentSnapshot{
				snap,
			}
		}(), nil).
		Once()

	d := &PurchasesFirestore{
		firestoreClientFun: func(ctx context.Context) *firestore.Client {
			return &f.fsClient
		},
		documentsHandler: &f.docHandler,
	}

	got, err := d.ListByBill(context.Background(), "user-1", "bill-1")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "purchase-2", got[0].ID)
	assert.Equal(t, "bill-1", got[0].BillID)
}

func TestPurchasesFirestore_CreateLines_Validation(t *testing.T) {
	d := NewPurchasesFirestoreWithClient(nil)

	_, err := d.CreateLines(context.Background(), "", "bill-1", []*domain.Purchase{{}})
	assert.ErrorIs(t, err, ErrInvalidUserID)

	_, err = d.CreateLines(context.Background(), "user-1", "bill-1", nil)
	assert.ErrorIs(t, err, ErrNoLines)

	tooMany := make([]*domain.Purchase, maxLinesPerBatch+1)
	for i := range tooMany {
		tooMany[i] = &domain.Purchase{}
	}

	_, err = d.CreateLines(context.Background(), "user-1", "bill-1", tooMany)
	assert.ErrorIs(t, err, ErrTooManyLines)
}

func TestPurchasesFirestore_DeleteWithBillDecrement_Validation(t *testing.T) {
	d := NewPurchasesFirestoreWithClient(nil)

	err := d.DeleteWithBillDecrement(context.Background(), "", "purchase-1", "bill-1")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	err = d.DeleteWithBillDecrement(context.Background(), "user-1", "", "bill-1")
	assert.ErrorIs(t, err, ErrInvalidPurchaseID)
}

func TestRollupData(t *testing.T) {
	purchaseDate := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

	data := rollupData(&domain.Purchase{
		NormalizedName: "milk",
		DisplayName:    "Milk",
		Price:          45.50,
		Category:       domain.CategoryDairy,
		PurchaseDate:   purchaseDate,
	})

	assert.Equal(t, "Milk", data["displayName"])
	assert.Equal(t, domain.CategoryDairy, data["category"])
	assert.Equal(t, 45.50, data["lastPrice"])
	assert.Equal(t, purchaseDate, data["lastPurchaseDate"])
	assert.Equal(t, firestore.Increment(1), data["purchaseCount"])
}

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
	purchaseDomain "github.com/daphne-i/pantrypal/purchase/domain"
	"github.com/daphne-i/pantrypal/uniqueitem/domain"
)

func TestUniqueItemsFirestore_NewUniqueItemsFirestore(t *testing.T) {
	_, err := NewUniqueItemsFirestore(context.Background(), "pantrypal-dev")
	assert.NoError(t, err)

	d := NewUniqueItemsFirestoreWithClient(nil)
	assert.NotNil(t, d)
}

func TestUniqueItemsFirestore_Validation(t *testing.T) {
	d := NewUniqueItemsFirestoreWithClient(nil)
	ctx := context.Background()

	_, err := d.Get(ctx, "", "milk")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	_, err = d.Get(ctx, "user-1", "")
	assert.ErrorIs(t, err, ErrInvalidItemName)

	_, err = d.List(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	err = d.SetShoppingFlag(ctx, "user-1", "", true)
	assert.ErrorIs(t, err, ErrInvalidItemName)
}

func TestUniqueItemsFirestore_List(t *testing.T) {
	lastPurchase := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

	type fields struct {
		fsClient   firestore.Client
		docHandler mocks.DocumentsHandler
	}

	tests := []struct {
		name    string
		fields  fields
		want    []*domain.UniqueItem
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "list pantry items",
			want: []*domain.UniqueItem{
				{
					ID:               "milk",
					DisplayName:      "Milk",
					Category:         purchaseDomain.CategoryDairy,
					LastPurchaseDate: lastPurchase,
					LastPrice:        45.50,
					PurchaseCount:    7,
				},
			},
			wantErr: false,
			on: func(f *fields) {
				f.docHandler.On("GetAll", mock.Anything).
					Return(func() []iface.DocumentSnapshot {
						snap := &mocks.DocumentSnapshot{}
						snap.On("DataTo", mock.Anything).Return(nil).
							Run(func(args mock.Arguments) {
								arg := args.Get(0).(*domain.UniqueItem)
								*arg = domain.UniqueItem{
									DisplayName:      "Milk",
									Category:         purchaseDomain.CategoryDairy,
									LastPurchaseDate: lastPurchase,
									LastPrice:        45.50,
									PurchaseCount:    7,
								}
							}).Once()
						snap.On("ID").Return("milk").Once()
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
	}

	for i := range tests {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			tt.on(&tt.fields)

			d := &UniqueItemsFirestore{
				firestoreClientFun: func(ctx context.Context) *firestore.Client {
					return &tt.fields.fsClient
				},
				documentsHandler: &tt.fields.docHandler,
			}

			got, err := d.List(context.Background(), "user-1")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equalf(t, tt.want, got, "List")
		})
	}
}

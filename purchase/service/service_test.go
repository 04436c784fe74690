package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/daphne-i/pantrypal/logger"
	loggerMocks "github.com/daphne-i/pantrypal/logger/mocks"
	"github.com/daphne-i/pantrypal/purchase/dal/mocks"
	"github.com/daphne-i/pantrypal/purchase/domain"
)

type serviceFields struct {
	dal    mocks.Purchases
	logger loggerMocks.ILogger
}

func newTestService(f *serviceFields) *purchaseService {
	return &purchaseService{
		loggerProvider: func(_ context.Context) logger.ILogger {
			return &f.logger
		},
		dal:      &f.dal,
		validate: validator.New(),
	}
}

func TestPurchaseService_SavePurchase(t *testing.T) {
	ctx := context.Background()
	purchaseDate := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		fields  serviceFields
		req     *SavePurchaseRequest
		want    *SavePurchaseResponse
		wantErr error
		on      func(f *serviceFields)
	}{
		{
			name: "save purchase with normalized name and rollup",
			req: &SavePurchaseRequest{
				UserID:       "user-1",
				DisplayName:  "  Milk ",
				Price:        "45.50",
				Category:     "Dairy",
				PurchaseDate: purchaseDate,
			},
			want: &SavePurchaseResponse{PurchaseID: "purchase-1"},
			on: func(f *serviceFields) {
				f.dal.On("CreateWithRollup", ctx, "user-1", &domain.Purchase{
					NormalizedName: "milk",
					DisplayName:    "  Milk ",
					Price:          45.50,
					Category:       domain.CategoryDairy,
					PurchaseDate:   purchaseDate,
					UserID:         "user-1",
				}).Return("purchase-1", nil).Once()
			},
		},
		{
			name: "formatted money price is accepted",
			req: &SavePurchaseRequest{
				UserID:       "user-1",
				DisplayName:  "Rice",
				Price:        "₹1,500.50",
				Category:     "Grains",
				PurchaseDate: purchaseDate,
			},
			want: &SavePurchaseResponse{PurchaseID: "purchase-2"},
			on: func(f *serviceFields) {
				f.dal.On("CreateWithRollup", ctx, "user-1", &domain.Purchase{
					NormalizedName: "rice",
					DisplayName:    "Rice",
					Price:          1500.50,
					Category:       domain.CategoryGrains,
					PurchaseDate:   purchaseDate,
					UserID:         "user-1",
				}).Return("purchase-2", nil).Once()
			},
		},
		{
			name: "unknown category is stored and only logged",
			req: &SavePurchaseRequest{
				UserID:       "user-1",
				DisplayName:  "Mystery",
				Price:        "10",
				Category:     "Electronics",
				PurchaseDate: purchaseDate,
			},
			want: &SavePurchaseResponse{PurchaseID: "purchase-3"},
			on: func(f *serviceFields) {
				f.logger.On("Warningf", mock.Anything, mock.Anything).Once()
				f.dal.On("CreateWithRollup", ctx, "user-1", &domain.Purchase{
					NormalizedName: "mystery",
					DisplayName:    "Mystery",
					Price:          10,
					Category:       domain.Category("Electronics"),
					PurchaseDate:   purchaseDate,
					UserID:         "user-1",
				}).Return("purchase-3", nil).Once()
			},
		},
		{
			name: "whitespace-only name is rejected",
			req: &SavePurchaseRequest{
				UserID:       "user-1",
				DisplayName:  "   ",
				Price:        "10",
				Category:     "Other",
				PurchaseDate: purchaseDate,
			},
			wantErr: ErrEmptyName,
			on:      func(f *serviceFields) {},
		},
		{
			name: "unparseable price is rejected",
			req: &SavePurchaseRequest{
				UserID:       "user-1",
				DisplayName:  "Milk",
				Price:        "forty five",
				Category:     "Dairy",
				PurchaseDate: purchaseDate,
			},
			wantErr: ErrInvalidPrice,
			on:      func(f *serviceFields) {},
		},
		{
			name: "zero price is rejected",
			req: &SavePurchaseRequest{
				UserID:       "user-1",
				DisplayName:  "Milk",
				Price:        "0",
				Category:     "Dairy",
				PurchaseDate: purchaseDate,
			},
			wantErr: ErrInvalidPrice,
			on:      func(f *serviceFields) {},
		},
		{
			name: "negative price is rejected",
			req: &SavePurchaseRequest{
				UserID:       "user-1",
				DisplayName:  "Milk",
				Price:        "-5",
				Category:     "Dairy",
				PurchaseDate: purchaseDate,
			},
			wantErr: ErrInvalidPrice,
			on:      func(f *serviceFields) {},
		},
		{
			name: "dal error is propagated",
			req: &SavePurchaseRequest{
				UserID:       "user-1",
				DisplayName:  "Milk",
				Price:        "45.50",
				Category:     "Dairy",
				PurchaseDate: purchaseDate,
			},
			wantErr: errors.New("commit failed"),
			on: func(f *serviceFields) {
				f.dal.On("CreateWithRollup", ctx, "user-1", mock.Anything).
					Return("", errors.New("commit failed")).Once()
			},
		},
	}

	for i := range tests {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			tt.on(&tt.fields)

			s := newTestService(&tt.fields)

			got, err := s.SavePurchase(ctx, tt.req)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)
			tt.fields.dal.AssertExpectations(t)
		})
	}
}

func TestPurchaseService_SaveBillLines(t *testing.T) {
	ctx := context.Background()
	purchaseDate := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

	t.Run("all lines stored atomically under the bill", func(t *testing.T) {
		f := serviceFields{}
		f.dal.On("CreateLines", ctx, "user-1", "bill-1", []*domain.Purchase{
			{
				NormalizedName: "milk",
				DisplayName:    "Milk",
				Price:          45.50,
				Category:       domain.CategoryDairy,
				PurchaseDate:   purchaseDate,
				UserID:         "user-1",
				BillID:         "bill-1",
			},
			{
				NormalizedName: "bread",
				DisplayName:    "Bread",
				Price:          30,
				Category:       domain.CategoryBakery,
				PurchaseDate:   purchaseDate,
				UserID:         "user-1",
				BillID:         "bill-1",
			},
		}).Return([]string{"purchase-1", "purchase-2"}, nil).Once()

		s := newTestService(&f)

		ids, err := s.SaveBillLines(ctx, "user-1", "bill-1", purchaseDate, []BillLineRequest{
			{DisplayName: "Milk", Price: "45.50", Category: "Dairy"},
			{DisplayName: "Bread", Price: "30", Category: "Bakery"},
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"purchase-1", "purchase-2"}, ids)
		f.dal.AssertExpectations(t)
	})

	t.Run("one bad line fails the whole submission", func(t *testing.T) {
		f := serviceFields{}
		s := newTestService(&f)

		_, err := s.SaveBillLines(ctx, "user-1", "bill-1", purchaseDate, []BillLineRequest{
			{DisplayName: "Milk", Price: "45.50", Category: "Dairy"},
			{DisplayName: "Bread", Price: "not a price", Category: "Bakery"},
		})
		assert.ErrorIs(t, err, ErrInvalidPrice)
		f.dal.AssertNotCalled(t, "CreateLines")
	})
}

func TestPurchaseService_DeletePurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("standalone purchase deletes without bill decrement", func(t *testing.T) {
		f := serviceFields{}
		f.dal.On("Get", ctx, "user-1", "purchase-1").
			Return(&domain.Purchase{ID: "purchase-1"}, nil).Once()
		f.dal.On("DeleteWithBillDecrement", ctx, "user-1", "purchase-1", "").
			Return(nil).Once()

		s := newTestService(&f)

		assert.NoError(t, s.DeletePurchase(ctx, "user-1", "purchase-1"))
		f.dal.AssertExpectations(t)
	})

	t.Run("bill purchase decrements its bill", func(t *testing.T) {
		f := serviceFields{}
		f.dal.On("Get", ctx, "user-1", "purchase-2").
			Return(&domain.Purchase{ID: "purchase-2", BillID: "bill-1"}, nil).Once()
		f.dal.On("DeleteWithBillDecrement", ctx, "user-1", "purchase-2", "bill-1").
			Return(nil).Once()

		s := newTestService(&f)

		assert.NoError(t, s.DeletePurchase(ctx, "user-1", "purchase-2"))
		f.dal.AssertExpectations(t)
	})

	t.Run("missing purchase surfaces the lookup error", func(t *testing.T) {
		f := serviceFields{}
		f.dal.On("Get", ctx, "user-1", "gone").
			Return(nil, errors.New("not found")).Once()

		s := newTestService(&f)

		assert.Error(t, s.DeletePurchase(ctx, "user-1", "gone"))
		f.dal.AssertNotCalled(t, "DeleteWithBillDecrement")
	})
}

func TestPurchaseService_UpdatePurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("patch reaches the store", func(t *testing.T) {
		f := serviceFields{}
		f.dal.On("Update", ctx, "user-1", "purchase-1", domain.PurchasePatch{
			DisplayName: "Whole Milk",
			Price:       52.00,
			Category:    domain.CategoryDairy,
			Quantity:    1,
			Unit:        "L",
		}).Return(nil).Once()

		s := newTestService(&f)

		err := s.UpdatePurchase(ctx, &UpdatePurchaseRequest{
			UserID:      "user-1",
			PurchaseID:  "purchase-1",
			DisplayName: "Whole Milk",
			Price:       "52.00",
			Category:    "Dairy",
			Quantity:    1,
			Unit:        "L",
		})
		assert.NoError(t, err)
		f.dal.AssertExpectations(t)
	})

	t.Run("non-positive price is rejected before the write", func(t *testing.T) {
		f := serviceFields{}
		s := newTestService(&f)

		err := s.UpdatePurchase(ctx, &UpdatePurchaseRequest{
			UserID:      "user-1",
			PurchaseID:  "purchase-1",
			DisplayName: "Whole Milk",
			Price:       "-52.00",
			Category:    "Dairy",
		})
		assert.ErrorIs(t, err, ErrInvalidPrice)
		f.dal.AssertNotCalled(t, "Update")
	})
}

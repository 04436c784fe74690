package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	billMocks "github.com/daphne-i/pantrypal/bill/dal/mocks"
	"github.com/daphne-i/pantrypal/bill/domain"
	"github.com/daphne-i/pantrypal/common"
	"github.com/daphne-i/pantrypal/logger"
	loggerMocks "github.com/daphne-i/pantrypal/logger/mocks"
	purchaseService "github.com/daphne-i/pantrypal/purchase/service"
	purchaseMocks "github.com/daphne-i/pantrypal/purchase/service/mocks"
)

type serviceFields struct {
	dal       billMocks.Bills
	purchases purchaseMocks.PurchaseService
	logger    loggerMocks.ILogger
}

func newTestService(f *serviceFields) *billService {
	return &billService{
		loggerProvider: func(_ context.Context) logger.ILogger {
			return &f.logger
		},
		dal:       &f.dal,
		purchases: &f.purchases,
		validate:  validator.New(),
	}
}

func TestBillService_CreateBill(t *testing.T) {
	ctx := context.Background()
	purchaseDate := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

	t.Run("bill and lines are stored, lines share the bill date", func(t *testing.T) {
		f := serviceFields{}
		lines := []purchaseService.BillLineRequest{
			{DisplayName: "Milk", Price: "45.50", Category: "Dairy"},
			{DisplayName: "Bread", Price: "30", Category: "Bakery"},
		}

		f.dal.On("Create", ctx, "user-1", &domain.Bill{
			ShopName:     "Big Bazaar",
			PurchaseDate: purchaseDate,
			TotalAmount:  common.Float(75.50),
			ItemCount:    0,
			UserID:       "user-1",
		}).Return("bill-1", nil).Once()
		f.purchases.On("SaveBillLines", ctx, "user-1", "bill-1", purchaseDate, lines).
			Return([]string{"purchase-1", "purchase-2"}, nil).Once()

		s := newTestService(&f)

		resp, err := s.CreateBill(ctx, &CreateBillRequest{
			UserID:       "user-1",
			ShopName:     "Big Bazaar",
			PurchaseDate: purchaseDate,
			TotalAmount:  "75.50",
			Lines:        lines,
		})
		assert.NoError(t, err)
		assert.Equal(t, "bill-1", resp.BillID)
		assert.Equal(t, []string{"purchase-1", "purchase-2"}, resp.PurchaseIDs)
		f.dal.AssertExpectations(t)
		f.purchases.AssertExpectations(t)
	})

	t.Run("empty total amount stores explicit null", func(t *testing.T) {
		f := serviceFields{}
		f.dal.On("Create", ctx, "user-1", &domain.Bill{
			ShopName:     "Corner Store",
			PurchaseDate: purchaseDate,
			TotalAmount:  nil,
			UserID:       "user-1",
		}).Return("bill-2", nil).Once()

		s := newTestService(&f)

		resp, err := s.CreateBill(ctx, &CreateBillRequest{
			UserID:       "user-1",
			ShopName:     "Corner Store",
			PurchaseDate: purchaseDate,
		})
		assert.NoError(t, err)
		assert.Equal(t, "bill-2", resp.BillID)
		assert.Empty(t, resp.PurchaseIDs)
		f.dal.AssertExpectations(t)
	})

	t.Run("unparseable total is rejected before any write", func(t *testing.T) {
		f := serviceFields{}
		s := newTestService(&f)

		_, err := s.CreateBill(ctx, &CreateBillRequest{
			UserID:       "user-1",
			ShopName:     "Corner Store",
			PurchaseDate: purchaseDate,
			TotalAmount:  "a lot",
		})
		assert.ErrorIs(t, err, ErrInvalidTotal)
		f.dal.AssertNotCalled(t, "Create")
	})

	t.Run("non-positive total is rejected before any write", func(t *testing.T) {
		f := serviceFields{}
		s := newTestService(&f)

		_, err := s.CreateBill(ctx, &CreateBillRequest{
			UserID:       "user-1",
			ShopName:     "Corner Store",
			PurchaseDate: purchaseDate,
			TotalAmount:  "-10",
		})
		assert.ErrorIs(t, err, ErrInvalidTotal)
		f.dal.AssertNotCalled(t, "Create")
	})

	t.Run("missing shop name fails validation", func(t *testing.T) {
		f := serviceFields{}
		s := newTestService(&f)

		_, err := s.CreateBill(ctx, &CreateBillRequest{
			UserID:       "user-1",
			PurchaseDate: purchaseDate,
		})
		assert.Error(t, err)
		f.dal.AssertNotCalled(t, "Create")
	})
}

func TestBillService_UpdateBill(t *testing.T) {
	ctx := context.Background()

	t.Run("only provided fields are patched", func(t *testing.T) {
		f := serviceFields{}
		f.dal.On("Update", ctx, "user-1", "bill-1", domain.BillPatch{
			ShopName: common.String("DMart"),
		}).Return(nil).Once()

		s := newTestService(&f)

		err := s.UpdateBill(ctx, &UpdateBillRequest{
			UserID:   "user-1",
			BillID:   "bill-1",
			ShopName: common.String("DMart"),
		})
		assert.NoError(t, err)
		f.dal.AssertExpectations(t)
	})

	t.Run("bad total amount is rejected", func(t *testing.T) {
		f := serviceFields{}
		s := newTestService(&f)

		err := s.UpdateBill(ctx, &UpdateBillRequest{
			UserID:      "user-1",
			BillID:      "bill-1",
			TotalAmount: common.String("??"),
		})
		assert.ErrorIs(t, err, ErrInvalidTotal)
		f.dal.AssertNotCalled(t, "Update")
	})
}

func TestBillService_DeleteBill(t *testing.T) {
	ctx := context.Background()

	f := serviceFields{}
	f.dal.On("DeleteCascade", ctx, "user-1", "bill-1").
		Return(errors.New("cascade failed")).Once()

	s := newTestService(&f)

	assert.Error(t, s.DeleteBill(ctx, "user-1", "bill-1"))
	f.dal.AssertExpectations(t)
}

package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	billDAL "github.com/daphne-i/pantrypal/bill/dal"
	billDALIface "github.com/daphne-i/pantrypal/bill/dal/iface"
	"github.com/daphne-i/pantrypal/bill/domain"
	"github.com/daphne-i/pantrypal/common"
	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/logger"
	purchaseService "github.com/daphne-i/pantrypal/purchase/service"
)

var ErrInvalidTotal = errors.New("total amount is not a valid amount")

//go:generate mockery --name BillService --output=./mocks
type BillService interface {
	CreateBill(ctx context.Context, req *CreateBillRequest) (*CreateBillResponse, error)
	UpdateBill(ctx context.Context, req *UpdateBillRequest) error
	DeleteBill(ctx context.Context, userID, billID string) error
	GetBill(ctx context.Context, userID, billID string) (*domain.Bill, error)
	ListBills(ctx context.Context, userID string) ([]*domain.Bill, error)
}

type billService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	dal            billDALIface.Bills
	purchases      purchaseService.PurchaseService
	validate       *validator.Validate
}

func NewBillService(log logger.Provider, conn *connection.Connection) *billService {
	return &billService{
		loggerProvider: log,
		conn:           conn,
		dal:            billDAL.NewBillsFirestoreWithClient(conn.Firestore),
		purchases:      purchaseService.NewPurchaseService(log, conn),
		validate:       validator.New(),
	}
}

// CreateBill stores the bill, then all of its lines in one atomic write that
// also bumps the bill's item count. A failed line batch leaves an empty bill
// behind rather than orphaned purchases.
func (s *billService) CreateBill(ctx context.Context, req *CreateBillRequest) (*CreateBillResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var total *float64

	if req.TotalAmount != "" {
		amount, err := common.ParseMoney(req.TotalAmount)
		if err != nil || amount <= 0 {
			return nil, ErrInvalidTotal
		}

		total = &amount
	}

	billID, err := s.dal.Create(ctx, req.UserID, &domain.Bill{
		ShopName:     req.ShopName,
		PurchaseDate: req.PurchaseDate,
		TotalAmount:  total,
		ItemCount:    0,
		UserID:       req.UserID,
	})
	if err != nil {
		return nil, err
	}

	var purchaseIDs []string

	if len(req.Lines) > 0 {
		purchaseIDs, err = s.purchases.SaveBillLines(ctx, req.UserID, billID, req.PurchaseDate, req.Lines)
		if err != nil {
			return nil, err
		}
	}

	return &CreateBillResponse{
		BillID:      billID,
		PurchaseIDs: purchaseIDs,
	}, nil
}

func (s *billService) UpdateBill(ctx context.Context, req *UpdateBillRequest) error {
	patch := domain.BillPatch{
		ShopName:     req.ShopName,
		PurchaseDate: req.PurchaseDate,
	}

	if req.TotalAmount != nil {
		amount, err := common.ParseMoney(*req.TotalAmount)
		if err != nil || amount <= 0 {
			return ErrInvalidTotal
		}

		patch.TotalAmount = &amount
	}

	return s.dal.Update(ctx, req.UserID, req.BillID, patch)
}

// DeleteBill removes the bill and all of its purchases. Unique-item rollups
// keep their counts; purchase history totals are cumulative.
func (s *billService) DeleteBill(ctx context.Context, userID, billID string) error {
	return s.dal.DeleteCascade(ctx, userID, billID)
}

func (s *billService) GetBill(ctx context.Context, userID, billID string) (*domain.Bill, error) {
	return s.dal.Get(ctx, userID, billID)
}

func (s *billService) ListBills(ctx context.Context, userID string) ([]*domain.Bill, error) {
	return s.dal.ListAll(ctx, userID)
}

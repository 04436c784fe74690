package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/daphne-i/pantrypal/common"
	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/logger"
	"github.com/daphne-i/pantrypal/purchase/dal"
	purchaseDALIface "github.com/daphne-i/pantrypal/purchase/dal/iface"
	"github.com/daphne-i/pantrypal/purchase/domain"
)

var (
	ErrEmptyName    = errors.New("item name cannot be empty")
	ErrInvalidPrice = errors.New("price is not a valid amount")
)

//go:generate mockery --name PurchaseService --output=./mocks
type PurchaseService interface {
	SavePurchase(ctx context.Context, req *SavePurchaseRequest) (*SavePurchaseResponse, error)
	SaveBillLines(ctx context.Context, userID, billID string, purchaseDate time.Time, lines []BillLineRequest) ([]string, error)
	UpdatePurchase(ctx context.Context, req *UpdatePurchaseRequest) error
	DeletePurchase(ctx context.Context, userID, purchaseID string) error
	GetPurchase(ctx context.Context, userID, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, userID string) ([]*domain.Purchase, error)
	ListBillPurchases(ctx context.Context, userID, billID string) ([]*domain.Purchase, error)
}

type purchaseService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	dal            purchaseDALIface.Purchases
	validate       *validator.Validate
}

func NewPurchaseService(log logger.Provider, conn *connection.Connection) *purchaseService {
	return &purchaseService{
		loggerProvider: log,
		conn:           conn,
		dal:            dal.NewPurchasesFirestoreWithClient(conn.Firestore),
		validate:       validator.New(),
	}
}

// toPurchase validates one submitted line and turns it into a storable
// purchase. Unknown categories are accepted as-is: the store enforces no
// referential integrity, so a stale client is a display problem, not a
// write error.
func (s *purchaseService) toPurchase(ctx context.Context, userID, billID, displayName, price, category string, purchaseDate time.Time, quantity float64, unit string) (*domain.Purchase, error) {
	normalized := domain.NormalizeName(displayName)
	if normalized == "" {
		return nil, ErrEmptyName
	}

	amount, err := common.ParseMoney(price)
	if err != nil || amount <= 0 {
		return nil, ErrInvalidPrice
	}

	if !domain.IsKnownCategory(domain.Category(category)) {
		s.loggerProvider(ctx).Warningf("purchase %q carries unknown category %q", displayName, category)
	}

	return &domain.Purchase{
		NormalizedName: normalized,
		DisplayName:    displayName,
		Price:          amount,
		Category:       domain.Category(category),
		PurchaseDate:   purchaseDate,
		UserID:         userID,
		BillID:         billID,
		Quantity:       quantity,
		Unit:           unit,
	}, nil
}

// SavePurchase stores a standalone purchase together with its unique-item
// rollup in one atomic write.
func (s *purchaseService) SavePurchase(ctx context.Context, req *SavePurchaseRequest) (*SavePurchaseResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	purchase, err := s.toPurchase(ctx, req.UserID, "", req.DisplayName, req.Price, req.Category, req.PurchaseDate, req.Quantity, req.Unit)
	if err != nil {
		return nil, err
	}

	id, err := s.dal.CreateWithRollup(ctx, req.UserID, purchase)
	if err != nil {
		return nil, err
	}

	return &SavePurchaseResponse{PurchaseID: id}, nil
}

// SaveBillLines stores all lines of a bill, their rollups and the bill's
// item-count bump atomically. All lines share the bill's purchase date.
func (s *purchaseService) SaveBillLines(ctx context.Context, userID, billID string, purchaseDate time.Time, lines []BillLineRequest) ([]string, error) {
	purchases := make([]*domain.Purchase, 0, len(lines))

	for _, line := range lines {
		if err := s.validate.Struct(line); err != nil {
			return nil, err
		}

		purchase, err := s.toPurchase(ctx, userID, billID, line.DisplayName, line.Price, line.Category, purchaseDate, line.Quantity, line.Unit)
		if err != nil {
			return nil, err
		}

		purchases = append(purchases, purchase)
	}

	return s.dal.CreateLines(ctx, userID, billID, purchases)
}

// UpdatePurchase patches an existing purchase. The unique-item rollup is
// left alone: its counter and last-seen fields record saves, not edits.
func (s *purchaseService) UpdatePurchase(ctx context.Context, req *UpdatePurchaseRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	if domain.NormalizeName(req.DisplayName) == "" {
		return ErrEmptyName
	}

	amount, err := common.ParseMoney(req.Price)
	if err != nil || amount <= 0 {
		return ErrInvalidPrice
	}

	if !domain.IsKnownCategory(domain.Category(req.Category)) {
		s.loggerProvider(ctx).Warningf("purchase %q carries unknown category %q", req.DisplayName, req.Category)
	}

	return s.dal.Update(ctx, req.UserID, req.PurchaseID, domain.PurchasePatch{
		DisplayName: req.DisplayName,
		Price:       amount,
		Category:    domain.Category(req.Category),
		Quantity:    req.Quantity,
		Unit:        req.Unit,
	})
}

// DeletePurchase removes a purchase; when the purchase belongs to a bill the
// bill's item count is decremented in the same atomic write.
func (s *purchaseService) DeletePurchase(ctx context.Context, userID, purchaseID string) error {
	purchase, err := s.dal.Get(ctx, userID, purchaseID)
	if err != nil {
		return err
	}

	return s.dal.DeleteWithBillDecrement(ctx, userID, purchaseID, purchase.BillID)
}

func (s *purchaseService) GetPurchase(ctx context.Context, userID, purchaseID string) (*domain.Purchase, error) {
	return s.dal.Get(ctx, userID, purchaseID)
}

func (s *purchaseService) ListPurchases(ctx context.Context, userID string) ([]*domain.Purchase, error) {
	return s.dal.ListAll(ctx, userID)
}

func (s *purchaseService) ListBillPurchases(ctx context.Context, userID, billID string) ([]*domain.Purchase, error) {
	return s.dal.ListByBill(ctx, userID, billID)
}

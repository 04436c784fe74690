package service

import (
	"context"

	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/logger"
	purchaseDomain "github.com/daphne-i/pantrypal/purchase/domain"
	"github.com/daphne-i/pantrypal/uniqueitem/dal"
	dalIface "github.com/daphne-i/pantrypal/uniqueitem/dal/iface"
	"github.com/daphne-i/pantrypal/uniqueitem/domain"
)

//go:generate mockery --name UniqueItemService --output=./mocks
type UniqueItemService interface {
	ListPantry(ctx context.Context, userID string) ([]*domain.UniqueItem, error)
	ShoppingList(ctx context.Context, userID string) ([]*domain.UniqueItem, error)
	MarkForShopping(ctx context.Context, userID, itemName string, marked bool) error
}

type uniqueItemService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	dal            dalIface.UniqueItems
}

func NewUniqueItemService(log logger.Provider, conn *connection.Connection) *uniqueItemService {
	return &uniqueItemService{
		loggerProvider: log,
		conn:           conn,
		dal:            dal.NewUniqueItemsFirestoreWithClient(conn.Firestore),
	}
}

func (s *uniqueItemService) ListPantry(ctx context.Context, userID string) ([]*domain.UniqueItem, error) {
	return s.dal.List(ctx, userID)
}

func (s *uniqueItemService) ShoppingList(ctx context.Context, userID string) ([]*domain.UniqueItem, error) {
	return s.dal.ListMarked(ctx, userID)
}

// MarkForShopping sets the shopping flag to an absolute value. Clients may
// retry freely; repeating a request cannot flip the flag back.
func (s *uniqueItemService) MarkForShopping(ctx context.Context, userID, itemName string, marked bool) error {
	return s.dal.SetShoppingFlag(ctx, userID, purchaseDomain.NormalizeName(itemName), marked)
}

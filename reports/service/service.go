package service

import (
	"context"
	"fmt"
	"time"

	"github.com/daphne-i/pantrypal/common"
	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/logger"
	profileService "github.com/daphne-i/pantrypal/profile/service"
	purchaseDAL "github.com/daphne-i/pantrypal/purchase/dal"
	purchaseDALIface "github.com/daphne-i/pantrypal/purchase/dal/iface"
	purchaseDomain "github.com/daphne-i/pantrypal/purchase/domain"
	"github.com/daphne-i/pantrypal/times"
)

// Dashboard is the home-screen summary for the current month.
type Dashboard struct {
	Month           string                     `json:"month"`
	Total           float64                    `json:"total"`
	TotalFormatted  string                     `json:"totalFormatted"`
	PurchaseCount   int                        `json:"purchaseCount"`
	Breakdown       []CategorySlice            `json:"breakdown"`
	MonthlyBudget   *float64                   `json:"monthlyBudget"`
	BudgetRemaining *float64                   `json:"budgetRemaining"`
	RecentPurchases []*purchaseDomain.Purchase `json:"recentPurchases"`
}

//go:generate mockery --name ReportService --output=./mocks
type ReportService interface {
	GetDashboard(ctx context.Context, userID string, now time.Time) (*Dashboard, error)
	GetTrend(ctx context.Context, userID string, now time.Time) ([]MonthSpend, error)
	GetBreakdown(ctx context.Context, userID string, now time.Time, category purchaseDomain.Category, text string) ([]CategorySlice, error)
	ExportCSV(ctx context.Context, userID string, now time.Time) ([]byte, string, error)
}

type reportService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	purchases      purchaseDALIface.Purchases
	profiles       profileService.ProfileService
}

func NewReportService(log logger.Provider, conn *connection.Connection) *reportService {
	return &reportService{
		loggerProvider: log,
		conn:           conn,
		purchases:      purchaseDAL.NewPurchasesFirestoreWithClient(conn.Firestore),
		profiles:       profileService.NewProfileService(log, conn),
	}
}

const recentPurchaseLimit = 10

// GetDashboard aggregates the current month's spend, breakdown and budget
// state from the raw purchase list. All derivation happens here; nothing is
// precomputed in the store besides the rollup counters.
func (s *reportService) GetDashboard(ctx context.Context, userID string, now time.Time) (*Dashboard, error) {
	purchases, err := s.monthPurchases(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := MonthlyTotal(purchases)

	dashboard := &Dashboard{
		Month:          times.MonthKey(now),
		Total:          total,
		TotalFormatted: common.FormatMoney(total),
		PurchaseCount:  len(purchases),
		Breakdown:      CategoryBreakdown(purchases),
		MonthlyBudget:  profile.MonthlyBudget,
	}

	if profile.MonthlyBudget != nil {
		remaining := common.RoundMoney(*profile.MonthlyBudget - total)
		dashboard.BudgetRemaining = &remaining
	}

	recent := purchases
	if len(recent) > recentPurchaseLimit {
		recent = recent[:recentPurchaseLimit]
	}

	dashboard.RecentPurchases = recent

	return dashboard, nil
}

// GetTrend returns the 12-month spending trend ending at now's month.
func (s *reportService) GetTrend(ctx context.Context, userID string, now time.Time) ([]MonthSpend, error) {
	from := times.MonthStart(now).AddDate(0, -11, 0)
	to := times.NextMonthStart(now)

	purchases, err := s.purchases.ListBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return YearlyTrend(purchases, now), nil
}

// GetBreakdown returns the current month's per-category totals, optionally
// narrowed to a single category and a case-insensitive name search.
func (s *reportService) GetBreakdown(ctx context.Context, userID string, now time.Time, category purchaseDomain.Category, text string) ([]CategorySlice, error) {
	purchases, err := s.monthPurchases(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	purchases = FilterByCategory(purchases, category)
	purchases = FilterByText(purchases, text)

	return CategoryBreakdown(purchases), nil
}

// ExportCSV renders the full purchase history as CSV and returns the bytes
// together with a dated download filename.
func (s *reportService) ExportCSV(ctx context.Context, userID string, now time.Time) ([]byte, string, error) {
	purchases, err := s.purchases.ListAll(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	data, err := BuildCSV(purchases)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("purchases-%s.csv", now.UTC().Format(times.YearMonthDayLayout))

	return data, filename, nil
}

func (s *reportService) monthPurchases(ctx context.Context, userID string, now time.Time) ([]*purchaseDomain.Purchase, error) {
	return s.purchases.ListBetween(ctx, userID, times.MonthStart(now), times.NextMonthStart(now))
}

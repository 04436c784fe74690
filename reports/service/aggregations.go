package service

import (
	"sort"
	"strings"
	"time"

	"github.com/daphne-i/pantrypal/common"
	purchaseDomain "github.com/daphne-i/pantrypal/purchase/domain"
	"github.com/daphne-i/pantrypal/times"
)

// CategorySlice is one slice of the spend breakdown pie.
type CategorySlice struct {
	Category purchaseDomain.Category `json:"category"`
	Total    float64                 `json:"total"`
}

// MonthSpend is one bar of the yearly trend chart, keyed by month.
type MonthSpend struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// MonthlyTotal sums the price of every purchase in the list. Amounts are
// rounded to money precision to keep float drift out of the UI.
func MonthlyTotal(purchases []*purchaseDomain.Purchase) float64 {
	var total float64
	for _, p := range purchases {
		total += p.Price
	}

	return common.RoundMoney(total)
}

// CategoryBreakdown groups spend by category, ordered by descending total.
// Unknown categories aggregate under their stored name rather than being
// folded into Other, so a stale client's data stays visible.
func CategoryBreakdown(purchases []*purchaseDomain.Purchase) []CategorySlice {
	totals := make(map[purchaseDomain.Category]float64)

	for _, p := range purchases {
		totals[p.Category] += p.Price
	}

	slices := make([]CategorySlice, 0, len(totals))
	for category, total := range totals {
		slices = append(slices, CategorySlice{
			Category: category,
			Total:    common.RoundMoney(total),
		})
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Total != slices[j].Total {
			return slices[i].Total > slices[j].Total
		}

		return slices[i].Category < slices[j].Category
	})

	return slices
}

// YearlyTrend buckets purchases into the 12 months ending at the month of
// now. Months without purchases appear with a zero total so the chart axis
// never collapses.
func YearlyTrend(purchases []*purchaseDomain.Purchase, now time.Time) []MonthSpend {
	keys := times.LastMonthKeys(now, 12)

	totals := make(map[string]float64, len(keys))
	for _, key := range keys {
		totals[key] = 0
	}

	for _, p := range purchases {
		key := times.MonthKey(p.PurchaseDate)
		if _, ok := totals[key]; ok {
			totals[key] += p.Price
		}
	}

	trend := make([]MonthSpend, 0, len(keys))
	for _, key := range keys {
		trend = append(trend, MonthSpend{
			Month: key,
			Total: common.RoundMoney(totals[key]),
		})
	}

	return trend
}

// FilterByCategory keeps only purchases of the given category. An empty
// category means no filtering.
func FilterByCategory(purchases []*purchaseDomain.Purchase, category purchaseDomain.Category) []*purchaseDomain.Purchase {
	if category == "" {
		return purchases
	}

	filtered := make([]*purchaseDomain.Purchase, 0, len(purchases))

	for _, p := range purchases {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// FilterByText keeps purchases whose display name contains the given text,
// case-insensitively. Empty text means no filtering.
func FilterByText(purchases []*purchaseDomain.Purchase, text string) []*purchaseDomain.Purchase {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return purchases
	}

	filtered := make([]*purchaseDomain.Purchase, 0, len(purchases))

	for _, p := range purchases {
		if strings.Contains(strings.ToLower(p.DisplayName), text) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

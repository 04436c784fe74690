package service

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	purchaseDomain "github.com/daphne-i/pantrypal/purchase/domain"
)

var csvHeader = []string{"date", "name", "category", "price", "normalized_name", "quantity", "unit", "bill_id", "purchase_id"}

// BuildCSV renders purchases as a spreadsheet-friendly export. Prices are
// written as plain decimals without currency formatting so imports stay
// locale-independent.
func BuildCSV(purchases []*purchaseDomain.Purchase) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, p := range purchases {
		record := []string{
			p.PurchaseDate.Format(time.RFC3339),
			p.DisplayName,
			string(p.Category),
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			p.NormalizedName,
			formatQuantity(p.Quantity),
			p.Unit,
			p.BillID,
			p.ID,
		}

		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatQuantity(q float64) string {
	if q == 0 {
		return ""
	}

	return strconv.FormatFloat(q, 'f', -1, 64)
}

package service

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	purchaseDomain "github.com/daphne-i/pantrypal/purchase/domain"
)

func TestBuildCSV(t *testing.T) {
	purchaseDate := time.Date(2026, 8, 12, 10, 30, 0, 0, time.UTC)

	data, err := BuildCSV([]*purchaseDomain.Purchase{
		{
			ID:             "purchase-1",
			DisplayName:    "Milk",
			NormalizedName: "milk",
			Category:       purchaseDomain.CategoryDairy,
			Price:          45.5,
			PurchaseDate:   purchaseDate,
			Quantity:       1,
			Unit:           "L",
			BillID:         "bill-1",
		},
		{
			ID:             "purchase-2",
			DisplayName:    "Bread",
			NormalizedName: "bread",
			Category:       purchaseDomain.CategoryBakery,
			Price:          30,
			PurchaseDate:   purchaseDate,
		},
	})
	assert.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, []string{"date", "name", "category", "price", "normalized_name", "quantity", "unit", "bill_id", "purchase_id"}, records[0])
	assert.Equal(t, []string{"2026-08-12T10:30:00Z", "Milk", "Dairy", "45.50", "milk", "1", "L", "bill-1", "purchase-1"}, records[1])
	assert.Equal(t, []string{"2026-08-12T10:30:00Z", "Bread", "Bakery", "30.00", "bread", "", "", "", "purchase-2"}, records[2])
}

func TestBuildCSV_Empty(t *testing.T) {
	data, err := BuildCSV(nil)
	assert.NoError(t, err)
	assert.Equal(t, "date,name,category,price,normalized_name,quantity,unit,bill_id,purchase_id\n", string(data))
}

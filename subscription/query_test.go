package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuerySpec_Equal(t *testing.T) {
	base := QuerySpec{
		Clauses: []Clause{{Field: "billId", Op: "==", Value: "bill-1"}},
		Orders:  []Order{{Field: "purchaseDate", Desc: true}},
		Limit:   50,
	}

	tests := []struct {
		name  string
		other QuerySpec
		equal bool
	}{
		{
			name: "identical spec built independently",
			other: QuerySpec{
				Clauses: []Clause{{Field: "billId", Op: "==", Value: "bill-1"}},
				Orders:  []Order{{Field: "purchaseDate", Desc: true}},
				Limit:   50,
			},
			equal: true,
		},
		{
			name: "different clause value",
			other: QuerySpec{
				Clauses: []Clause{{Field: "billId", Op: "==", Value: "bill-2"}},
				Orders:  []Order{{Field: "purchaseDate", Desc: true}},
				Limit:   50,
			},
			equal: false,
		},
		{
			name: "different order direction",
			other: QuerySpec{
				Clauses: []Clause{{Field: "billId", Op: "==", Value: "bill-1"}},
				Orders:  []Order{{Field: "purchaseDate", Desc: false}},
				Limit:   50,
			},
			equal: false,
		},
		{
			name: "different limit",
			other: QuerySpec{
				Clauses: []Clause{{Field: "billId", Op: "==", Value: "bill-1"}},
				Orders:  []Order{{Field: "purchaseDate", Desc: true}},
				Limit:   10,
			},
			equal: false,
		},
		{
			name: "missing clause",
			other: QuerySpec{
				Orders: []Order{{Field: "purchaseDate", Desc: true}},
				Limit:  50,
			},
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, base.Equal(tt.other))
			assert.Equal(t, tt.equal, tt.other.Equal(base))
		})
	}
}

func TestQuerySpec_Equal_SliceValues(t *testing.T) {
	a := QuerySpec{Clauses: []Clause{{Field: "category", Op: "in", Value: []string{"Dairy", "Produce"}}}}
	b := QuerySpec{Clauses: []Clause{{Field: "category", Op: "in", Value: []string{"Dairy", "Produce"}}}}
	c := QuerySpec{Clauses: []Clause{{Field: "category", Op: "in", Value: []string{"Dairy"}}}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"thousands grouping", 1500.5, "₹1,500.50"},
		{"two fraction digits always", 45, "₹45.00"},
		{"indian grouping above a lakh", 150000, "₹1,50,000.00"},
		{"small amount", 0.5, "₹0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.value))
		})
	}
}

func TestParseMoney_RoundTrip(t *testing.T) {
	values := []float64{1500.5, 45.5, 0, 99999.99, 150000}

	for _, v := range values {
		got, err := ParseMoney(FormatMoney(v))
		assert.NoError(t, err)
		assert.Equal(t, RoundMoney(v), got)
	}
}

func TestParseMoney_Invalid(t *testing.T) {
	for _, s := range []string{"", "₹", "abc", "₹1,2,3x"} {
		_, err := ParseMoney(s)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

package common

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol is prefixed to formatted amounts. The product is
// rupee-denominated; there is no multi-currency support.
const CurrencySymbol = "₹"

var moneyPrinter = message.NewPrinter(language.MustParse("en-IN"))

var ErrInvalidAmount = errors.New("invalid monetary amount")

// FormatMoney formats an amount with the currency symbol, locale digit
// grouping and exactly two fraction digits, e.g. 1500.5 -> "₹1,500.50".
func FormatMoney(v float64) string {
	d := number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)

	return moneyPrinter.Sprintf("%s%v", CurrencySymbol, d)
}

// ParseMoney parses a string produced by FormatMoney back into a numeric
// amount, rounded to two decimal places.
func ParseMoney(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, CurrencySymbol)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if s == "" {
		return 0, ErrInvalidAmount
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	return RoundMoney(v), nil
}

// RoundMoney rounds an amount to two decimal places.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

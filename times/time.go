package times

import "time"

const (
	YearMonthDayLayout = "2006-01-02"
	YearMonthLayout    = "2006-01"
)

// MonthStart returns midnight UTC on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// NextMonthStart returns midnight UTC on the first day of the month after t's.
func NextMonthStart(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0)
}

// MonthKey returns t's year-month bucket key, e.g. "2026-08".
func MonthKey(t time.Time) string {
	return t.UTC().Format(YearMonthLayout)
}

// LastMonthKeys returns the n year-month keys ending at (and including)
// end's month, in ascending order.
func LastMonthKeys(end time.Time, n int) []string {
	keys := make([]string, 0, n)

	start := MonthStart(end).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		keys = append(keys, MonthKey(start.AddDate(0, i, 0)))
	}

	return keys
}

// SameMonth reports whether both times fall in the same UTC year-month.
func SameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical yyyy-mm-dd wire format for entry dates.
const DateLayout = "2006-01-02"

// MonthBounds returns the first and last day of t's month as yyyy-mm-dd
// strings, suitable for date-range repository queries.
func MonthBounds(t time.Time) (string, string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}

// Round2 rounds a monetary value to 2 decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

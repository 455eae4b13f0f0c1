package importer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount normalizes a raw monetary string into a decimal.
//
// Accounting parenthesis notation marks the value negative: "(800.00)" parses
// as -800. When the string carries both "," and "." the separator appearing
// last is taken as the decimal mark, which disambiguates US ("1,234.56") from
// Brazilian ("1.234,56") formatting. A comma without any dot is a decimal
// mark. Anything that still fails to parse after normalization yields zero,
// which the validation stage then flags as an invalid amount.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)

	negative := strings.Contains(s, "(") && strings.Contains(s, ")")
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	s = strings.TrimSpace(s)

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastDot > lastComma {
			// US style: commas are thousands separators.
			s = strings.ReplaceAll(s, ",", "")
		} else {
			// Brazilian style: dots are thousands separators, comma is
			// the decimal mark.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
	case lastComma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	if negative {
		return value.Neg()
	}
	return value
}

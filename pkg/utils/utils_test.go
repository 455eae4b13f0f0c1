package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name  string
		in    time.Time
		first string
		last  string
	}{
		{"mid month", time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC), "2025-01-01", "2025-01-31"},
		{"february leap year", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), "2024-02-01", "2024-02-29"},
		{"february common year", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "2025-02-01", "2025-02-28"},
		{"december", time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), "2025-12-01", "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := MonthBounds(tt.in)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestRound2(t *testing.T) {
	got := Round2(decimal.RequireFromString("747.8849"))
	assert.True(t, got.Equal(decimal.RequireFromString("747.88")))
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LookupResult is one vehicle market-value lookup kept in the per-key history
// list. Key is the plate or VIN the lookup was made with.
type LookupResult struct {
	Key        string          `json:"key"`
	Make       string          `json:"make"`
	Model      string          `json:"model"`
	Year       int             `json:"year"`
	Value      decimal.Decimal `json:"value"`
	LookedUpAt time.Time       `json:"looked_up_at"`
}

// DTO for recording a lookup

type LookupRequest struct {
	Owner string          `json:"owner" validate:"required"`
	Key   string          `json:"key" validate:"required"`
	Make  string          `json:"make"`
	Model string          `json:"model"`
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
}

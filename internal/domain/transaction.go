package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a persisted cash-flow entry. Amount is a positive magnitude;
// direction is carried by Type (receita/despesa).
type Transaction struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	CategoryID  *string         `json:"category_id" db:"category_id"`
	Type        string          `json:"type" db:"type"`
	Date        string          `json:"date" db:"date"`
	Notes       string          `json:"notes" db:"notes"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// CashflowSummary aggregates a period's totals, cached by the scheduler.
type CashflowSummary struct {
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Net         decimal.Decimal `json:"net"`
	ComputedAt  time.Time       `json:"computed_at"`
}

package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transaction type constants
const (
	TransactionTypeIncome  = "receita"
	TransactionTypeExpense = "despesa"
)

// Recurrence status values accepted by the import schema.
const (
	ImportStatusFixed    = "Fixa"
	ImportStatusVariable = "Variavel"
)

// ImportRecord is one raw CSV row in the 7-column positional schema:
// Date,Amount,Business,Category,TransactionID,Account,Status.
type ImportRecord struct {
	Date          string `json:"date"`
	Amount        string `json:"amount"`
	Business      string `json:"business"`
	Category      string `json:"category"`
	TransactionID string `json:"transaction_id"`
	Account       string `json:"account"`
	Status        string `json:"status"`
}

// ClassifiedRecord is an ImportRecord after amount normalization and
// income/expense classification. Amount is always a positive magnitude; the
// sign lives in Type. CategoryID is a best-effort fuzzy lookup and may be nil.
type ClassifiedRecord struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  *string         `json:"category_id"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
	Notes       string          `json:"notes"`
}

// ValidationError points at one rule violation on one CSV line. The header is
// line 1, so the first data row reports as line 2.
type ValidationError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (e ValidationError) String() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ImportSummary reports the outcome of a committed batch. The batch is not
// transactional: Imported and Failed can both be non-zero.
type ImportSummary struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// DTOs for requests and responses

type ImportPreviewRequest struct {
	CSV string `json:"csv" validate:"required"`
}

type ImportPreviewResponse struct {
	Records          []ClassifiedRecord `json:"records"`
	ValidationErrors []ValidationError  `json:"validation_errors"`
	SkippedLines     int                `json:"skipped_lines"`
}

type ImportCommitRequest struct {
	CSV string `json:"csv" validate:"required"`
}

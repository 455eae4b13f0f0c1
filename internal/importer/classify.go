package importer

import (
	"fmt"
	"strings"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

// Classify turns a raw record into a persistable cash-flow entry. The sign of
// the normalized amount decides the direction: negative means despesa,
// anything else receita. The stored amount is always the positive magnitude.
// Classification is a pure function of its inputs: classifying the same
// record twice yields the same result.
func Classify(rec domain.ImportRecord, categories []domain.Category) domain.ClassifiedRecord {
	amount := ParseAmount(rec.Amount)

	txType := domain.TransactionTypeIncome
	if amount.IsNegative() {
		txType = domain.TransactionTypeExpense
	}

	return domain.ClassifiedRecord{
		Description: strings.TrimSpace(rec.Business),
		Amount:      amount.Abs(),
		CategoryID:  MatchCategory(rec.Category, txType, categories),
		Type:        txType,
		Date:        rec.Date,
		Notes:       buildNotes(rec),
	}
}

// MatchCategory resolves a category id by fuzzy name matching: the first
// category of the given type whose lowercased name appears as a substring of
// the row's category text wins. This is best-effort and order-dependent on
// the supplied list; no match returns nil and the record stays importable
// with an unassigned category.
func MatchCategory(text, txType string, categories []domain.Category) *string {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}

	for _, c := range categories {
		if c.Type != txType {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			continue
		}
		if strings.Contains(needle, name) {
			id := c.ID.String()
			return &id
		}
	}

	return nil
}

// buildNotes keeps the source fields that have no column of their own.
func buildNotes(rec domain.ImportRecord) string {
	var parts []string
	if rec.Account != "" {
		parts = append(parts, "Conta: "+rec.Account)
	}
	if rec.TransactionID != "" {
		parts = append(parts, "ID: "+rec.TransactionID)
	}
	if rec.Status != "" {
		parts = append(parts, fmt.Sprintf("Recorrência: %s", rec.Status))
	}
	return strings.Join(parts, " | ")
}

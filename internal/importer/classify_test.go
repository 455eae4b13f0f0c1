package importer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

func testCategories() []domain.Category {
	return []domain.Category{
		{ID: uuid.New(), Name: "Vendas", Type: domain.TransactionTypeIncome},
		{ID: uuid.New(), Name: "Manutencao", Type: domain.TransactionTypeExpense},
		{ID: uuid.New(), Name: "Taxas", Type: domain.TransactionTypeExpense},
	}
}

func TestClassify_PositiveAmountIsIncome(t *testing.T) {
	rec := validRecord()
	rec.Amount = "1.200,00"
	rec.Category = "Vendas de veiculos"

	cats := testCategories()
	got := Classify(rec, cats)

	assert.Equal(t, domain.TransactionTypeIncome, got.Type)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(1200)))
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, cats[0].ID.String(), *got.CategoryID)
	assert.Equal(t, "2025-01-15", got.Date)
	assert.Equal(t, "Venda Gol", got.Description)
}

func TestClassify_ParenthesizedAmountIsExpense(t *testing.T) {
	rec := validRecord()
	rec.Amount = "(350,00)"
	rec.Category = "Manutencao preventiva"

	cats := testCategories()
	got := Classify(rec, cats)

	assert.Equal(t, domain.TransactionTypeExpense, got.Type)
	// Magnitude is stored positive; direction lives in Type.
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(350)))
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, cats[1].ID.String(), *got.CategoryID)
}

func TestClassify_CategoryTypeMustMatch(t *testing.T) {
	rec := validRecord()
	// Positive amount resolves to income, but "Manutencao" is an expense
	// category, so the lookup comes up empty.
	rec.Amount = "100.00"
	rec.Category = "Manutencao"

	got := Classify(rec, testCategories())
	assert.Nil(t, got.CategoryID)
}

func TestClassify_NoMatchLeavesCategoryNil(t *testing.T) {
	rec := validRecord()
	rec.Category = "Algo desconhecido"

	got := Classify(rec, testCategories())
	assert.Nil(t, got.CategoryID)
}

func TestClassify_Idempotent(t *testing.T) {
	rec := validRecord()
	rec.Amount = "(99,90)"
	cats := testCategories()

	first := Classify(rec, cats)
	second := Classify(rec, cats)

	assert.Equal(t, first, second)
}

func TestMatchCategory_FirstMatchWins(t *testing.T) {
	cardID := uuid.New()
	cats := []domain.Category{
		{ID: cardID, Name: "Card", Type: domain.TransactionTypeExpense},
		{ID: uuid.New(), Name: "Credit Card Fees", Type: domain.TransactionTypeExpense},
	}

	// Substring containment is deliberately loose: "Card" matches both
	// "Credit Card Fees" and "Discard"; list order decides.
	got := MatchCategory("Credit Card Fees", domain.TransactionTypeExpense, cats)
	require.NotNil(t, got)
	assert.Equal(t, cardID.String(), *got)

	got = MatchCategory("Discard", domain.TransactionTypeExpense, cats)
	require.NotNil(t, got)
	assert.Equal(t, cardID.String(), *got)
}

func TestMatchCategory_CaseInsensitive(t *testing.T) {
	cats := testCategories()

	got := MatchCategory("VENDAS DO MES", domain.TransactionTypeIncome, cats)
	require.NotNil(t, got)
	assert.Equal(t, cats[0].ID.String(), *got)
}

func TestClassify_NotesCarrySourceFields(t *testing.T) {
	rec := validRecord()

	got := Classify(rec, nil)
	assert.Contains(t, got.Notes, "Caixa")
	assert.Contains(t, got.Notes, "TX1")
	assert.Contains(t, got.Notes, "Fixa")
}

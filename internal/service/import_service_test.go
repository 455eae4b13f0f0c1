package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/finance-engine/internal/domain"
	"github.com/dealerdesk/finance-engine/internal/importer"
	customError "github.com/dealerdesk/finance-engine/pkg/errors"
	"github.com/dealerdesk/finance-engine/tests/mocks"
)

const importHeader = "Date,Amount,Business,Category,TransactionID,Account,Status\n"

func newImportService(txRepo *mocks.MockTransactionRepository, catRepo *mocks.MockCategoryRepository) *ImportService {
	return NewImportService(importer.New(nil), txRepo, catRepo, nil)
}

func TestPreview(t *testing.T) {
	txRepo := &mocks.MockTransactionRepository{}
	catRepo := &mocks.MockCategoryRepository{}
	svc := newImportService(txRepo, catRepo)

	vendas := domain.Category{ID: uuid.New(), Name: "Vendas", Type: domain.TransactionTypeIncome}
	catRepo.On("List", mock.Anything).Return([]domain.Category{vendas}, nil)

	csv := importHeader +
		"2025-01-15,\"1.200,00\",Venda Gol,Vendas,TX1,Caixa,Fixa\n" +
		"2025-01-16,(350.00),Troca de oleo,Servicos,TX2,Caixa,Variavel\n" +
		"short,row"

	preview, err := svc.Preview(context.Background(), csv)

	require.NoError(t, err)
	assert.Empty(t, preview.ValidationErrors)
	assert.Equal(t, 1, preview.SkippedLines)
	require.Len(t, preview.Records, 2)

	assert.Equal(t, domain.TransactionTypeIncome, preview.Records[0].Type)
	assert.True(t, preview.Records[0].Amount.Equal(decimal.NewFromInt(1200)))
	require.NotNil(t, preview.Records[0].CategoryID)
	assert.Equal(t, vendas.ID.String(), *preview.Records[0].CategoryID)

	assert.Equal(t, domain.TransactionTypeExpense, preview.Records[1].Type)
	assert.True(t, preview.Records[1].Amount.Equal(decimal.NewFromInt(350)))
	assert.Nil(t, preview.Records[1].CategoryID)

	txRepo.AssertNotCalled(t, "Create")
}

func TestPreview_ReportsValidationErrors(t *testing.T) {
	txRepo := &mocks.MockTransactionRepository{}
	catRepo := &mocks.MockCategoryRepository{}
	svc := newImportService(txRepo, catRepo)

	catRepo.On("List", mock.Anything).Return([]domain.Category{}, nil)

	csv := importHeader + "2025-13-40,garbage, ,Vendas,TX1,Caixa,Maybe"

	preview, err := svc.Preview(context.Background(), csv)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(preview.ValidationErrors), 3)
	for _, e := range preview.ValidationErrors {
		assert.Equal(t, 2, e.Line)
	}
}

func TestCommit_Success(t *testing.T) {
	txRepo := &mocks.MockTransactionRepository{}
	catRepo := &mocks.MockCategoryRepository{}
	svc := newImportService(txRepo, catRepo)

	catRepo.On("List", mock.Anything).Return([]domain.Category{}, nil)
	txRepo.On("Create", mock.Anything, mock.MatchedBy(func(tx *domain.Transaction) bool {
		return tx.Amount.IsPositive() && tx.ID != uuid.Nil
	})).Return(nil)

	csv := importHeader +
		"2025-01-15,1200.00,Venda Gol,Vendas,TX1,Caixa,Fixa\n" +
		"2025-01-16,(350.00),Troca de oleo,Servicos,TX2,Caixa,Variavel"

	summary, validationErrs, err := svc.Commit(context.Background(), csv)

	require.NoError(t, err)
	assert.Empty(t, validationErrs)
	assert.Equal(t, 2, summary.Imported)
	assert.Zero(t, summary.Failed)
	txRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCommit_RejectsInvalidBatch(t *testing.T) {
	txRepo := &mocks.MockTransactionRepository{}
	catRepo := &mocks.MockCategoryRepository{}
	svc := newImportService(txRepo, catRepo)

	csv := importHeader + "2025-01-15,1200.00,Venda Gol,Vendas,TX1,Caixa,Maybe"

	summary, validationErrs, err := svc.Commit(context.Background(), csv)

	require.Error(t, err)
	assert.ErrorIs(t, err, customError.ErrImportValidationFailed)
	assert.Nil(t, summary)
	require.Len(t, validationErrs, 1)
	// Nothing is written when the batch fails validation.
	txRepo.AssertNotCalled(t, "Create")
}

func TestCommit_EmptyBatch(t *testing.T) {
	txRepo := &mocks.MockTransactionRepository{}
	catRepo := &mocks.MockCategoryRepository{}
	svc := newImportService(txRepo, catRepo)

	_, _, err := svc.Commit(context.Background(), importHeader)

	require.Error(t, err)
	assert.ErrorIs(t, err, customError.ErrEmptyImportBatch)
}

func TestCommit_ContinuesPastPersistFailures(t *testing.T) {
	txRepo := &mocks.MockTransactionRepository{}
	catRepo := &mocks.MockCategoryRepository{}
	svc := newImportService(txRepo, catRepo)

	catRepo.On("List", mock.Anything).Return([]domain.Category{}, nil)

	// Second record fails; the batch keeps going.
	txRepo.On("Create", mock.Anything, mock.MatchedBy(func(tx *domain.Transaction) bool {
		return tx.Description == "Falha"
	})).Return(errors.New("unique constraint violation"))
	txRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	csv := importHeader +
		"2025-01-15,100.00,Primeiro,Vendas,TX1,Caixa,Fixa\n" +
		"2025-01-16,200.00,Falha,Vendas,TX2,Caixa,Fixa\n" +
		"2025-01-17,300.00,Terceiro,Vendas,TX3,Caixa,Fixa"

	summary, _, err := svc.Commit(context.Background(), csv)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "Falha")
	txRepo.AssertNumberOfCalls(t, "Create", 3)
}

func TestCommit_CancelledContextStopsPersisting(t *testing.T) {
	txRepo := &mocks.MockTransactionRepository{}
	catRepo := &mocks.MockCategoryRepository{}
	svc := newImportService(txRepo, catRepo)

	catRepo.On("List", mock.Anything).Return([]domain.Category{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	csv := importHeader +
		"2025-01-15,100.00,Primeiro,Vendas,TX1,Caixa,Fixa\n" +
		"2025-01-16,200.00,Segundo,Vendas,TX2,Caixa,Fixa"

	summary, _, err := svc.Commit(ctx, csv)

	require.NoError(t, err)
	assert.Zero(t, summary.Imported)
	txRepo.AssertNotCalled(t, "Create")
}

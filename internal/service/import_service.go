package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dealerdesk/finance-engine/internal/domain"
	"github.com/dealerdesk/finance-engine/internal/importer"
	"github.com/dealerdesk/finance-engine/internal/repository"
	customError "github.com/dealerdesk/finance-engine/pkg/errors"
)

type ImportService struct {
	pipeline *importer.Pipeline
	txRepo   repository.TransactionRepository
	catRepo  repository.CategoryRepository
	log      *zap.Logger
}

func NewImportService(
	pipeline *importer.Pipeline,
	txRepo repository.TransactionRepository,
	catRepo repository.CategoryRepository,
	log *zap.Logger,
) *ImportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImportService{
		pipeline: pipeline,
		txRepo:   txRepo,
		catRepo:  catRepo,
		log:      log,
	}
}

// Preview runs the full pipeline without persisting anything: parse,
// validate, classify against the stored categories. Malformed rows surface as
// validation errors, never as a failed call.
func (s *ImportService) Preview(ctx context.Context, csvText string) (*domain.ImportPreviewResponse, error) {
	records, skipped := s.pipeline.Parse(csvText)
	validationErrs := importer.Validate(records)

	categories, err := s.catRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	classified := make([]domain.ClassifiedRecord, 0, len(records))
	for _, rec := range records {
		classified = append(classified, importer.Classify(rec, categories))
	}

	return &domain.ImportPreviewResponse{
		Records:          classified,
		ValidationErrors: validationErrs,
		SkippedLines:     skipped,
	}, nil
}

// Commit parses and validates the batch, then persists it one record at a
// time. Validation failures reject the whole batch before anything is
// written. Persist failures do not: the loop continues past individual
// errors and reports per-record outcomes in the summary. Cancelling the
// context stops further persists; records already written stay written.
func (s *ImportService) Commit(ctx context.Context, csvText string) (*domain.ImportSummary, []domain.ValidationError, error) {
	records, skipped := s.pipeline.Parse(csvText)
	if len(records) == 0 {
		return nil, nil, customError.WrapEmptyImportBatch()
	}

	validationErrs := importer.Validate(records)
	if len(validationErrs) > 0 {
		return nil, validationErrs, customError.WrapImportValidationFailed(len(validationErrs))
	}

	categories, err := s.catRepo.List(ctx)
	if err != nil {
		return nil, nil, customError.WrapDatabaseError(err)
	}

	summary := &domain.ImportSummary{}
	for _, rec := range records {
		if ctx.Err() != nil {
			s.log.Warn("import cancelled",
				zap.Int("imported", summary.Imported),
				zap.Int("remaining", len(records)-summary.Imported-summary.Failed),
			)
			break
		}

		classified := importer.Classify(rec, categories)
		tx := &domain.Transaction{
			ID:          uuid.New(),
			Description: classified.Description,
			Amount:      classified.Amount,
			CategoryID:  classified.CategoryID,
			Type:        classified.Type,
			Date:        classified.Date,
			Notes:       classified.Notes,
			CreatedAt:   time.Now(),
		}

		if err := s.txRepo.Create(ctx, tx); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("%s (%s): %v", classified.Description, classified.Date, err))
			s.log.Warn("failed to persist imported record",
				zap.String("description", classified.Description),
				zap.String("date", classified.Date),
				zap.Error(err),
			)
			continue
		}
		summary.Imported++
	}

	s.log.Info("import committed",
		zap.Int("imported", summary.Imported),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped_lines", skipped),
	)

	return summary, nil, nil
}

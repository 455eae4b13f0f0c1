package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dealerdesk/finance-engine/internal/domain"
	"github.com/dealerdesk/finance-engine/internal/financing"
	"github.com/dealerdesk/finance-engine/internal/repository"
	customError "github.com/dealerdesk/finance-engine/pkg/errors"
	"github.com/dealerdesk/finance-engine/pkg/utils"
)

type FinancingService struct {
	quoteRepo repository.QuoteRepository
	log       *zap.Logger
}

func NewFinancingService(quoteRepo repository.QuoteRepository, log *zap.Logger) *FinancingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FinancingService{quoteRepo: quoteRepo, log: log}
}

// Quote validates the parameters, runs the amortization engine and persists
// the resulting simulation. Monetary outputs on the stored quote are rounded
// to cents; the returned LoanResult keeps full precision.
func (s *FinancingService) Quote(ctx context.Context, params domain.LoanParameters) (*domain.Quote, domain.LoanResult, error) {
	if err := validateParameters(params); err != nil {
		return nil, domain.LoanResult{}, err
	}

	result := financing.ComputeLoan(params)

	quote := &domain.Quote{
		ID:                        uuid.New(),
		VehiclePrice:              params.VehiclePrice,
		DownPayment:               params.DownPayment,
		InterestRateAnnualPercent: params.InterestRateAnnualPercent,
		Installments:              params.Installments,
		DealerFee:                 params.DealerFee,
		RegistrationFee:           params.RegistrationFee,
		OtherFees:                 params.OtherFees,
		TaxRatePercent:            params.TaxRatePercent,
		FinancedAmount:            utils.Round2(result.FinancedAmount),
		MonthlyPayment:            utils.Round2(result.MonthlyPayment),
		TotalAmount:               utils.Round2(result.TotalAmount),
		CreatedAt:                 time.Now(),
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, domain.LoanResult{}, customError.WrapDatabaseError(err)
	}

	s.log.Info("quote created",
		zap.String("quote_id", quote.ID.String()),
		zap.String("monthly_payment", quote.MonthlyPayment.String()),
		zap.Int("installments", quote.Installments),
	)

	return quote, result, nil
}

// GetQuote retrieves a stored simulation by id.
func (s *FinancingService) GetQuote(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapQuoteNotFound(id.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return quote, nil
}

// RecentQuotes returns the newest stored simulations.
func (s *FinancingService) RecentQuotes(ctx context.Context, limit int) ([]*domain.Quote, error) {
	quotes, err := s.quoteRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return quotes, nil
}

// validateParameters enforces the engine's preconditions at the boundary:
// positive vehicle price, at least one installment, nothing negative.
func validateParameters(p domain.LoanParameters) error {
	if !p.VehiclePrice.IsPositive() {
		return customError.WrapInvalidLoanParameters("vehicle price must be greater than zero")
	}
	if p.Installments < 1 {
		return customError.WrapInvalidLoanParameters("installments must be at least 1")
	}

	nonNegative := []struct {
		name  string
		value decimal.Decimal
	}{
		{"down payment", p.DownPayment},
		{"interest rate", p.InterestRateAnnualPercent},
		{"dealer fee", p.DealerFee},
		{"registration fee", p.RegistrationFee},
		{"other fees", p.OtherFees},
		{"tax rate", p.TaxRatePercent},
	}
	for _, f := range nonNegative {
		if f.value.IsNegative() {
			return customError.WrapInvalidLoanParameters(f.name + " must not be negative")
		}
	}

	return nil
}

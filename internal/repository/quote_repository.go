package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

type quoteRepository struct {
	db *sqlx.DB
}

func NewQuoteRepository(db *sqlx.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	query := `
		INSERT INTO quotes (
			id, vehicle_price, down_payment, interest_rate_annual_percent, installments,
			dealer_fee, registration_fee, other_fees, tax_rate_percent,
			financed_amount, monthly_payment, total_amount, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		quote.ID,
		quote.VehiclePrice,
		quote.DownPayment,
		quote.InterestRateAnnualPercent,
		quote.Installments,
		quote.DealerFee,
		quote.RegistrationFee,
		quote.OtherFees,
		quote.TaxRatePercent,
		quote.FinancedAmount,
		quote.MonthlyPayment,
		quote.TotalAmount,
		quote.CreatedAt,
	)

	return err
}

func (r *quoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	query := `
		SELECT id, vehicle_price, down_payment, interest_rate_annual_percent, installments,
		       dealer_fee, registration_fee, other_fees, tax_rate_percent,
		       financed_amount, monthly_payment, total_amount, created_at
		FROM quotes
		WHERE id = $1
	`

	var quote domain.Quote
	if err := r.db.GetContext(ctx, &quote, query, id); err != nil {
		return nil, err
	}

	return &quote, nil
}

func (r *quoteRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Quote, error) {
	query := `
		SELECT id, vehicle_price, down_payment, interest_rate_annual_percent, installments,
		       dealer_fee, registration_fee, other_fees, tax_rate_percent,
		       financed_amount, monthly_payment, total_amount, created_at
		FROM quotes
		ORDER BY created_at DESC
		LIMIT $1
	`

	var quotes []*domain.Quote
	if err := r.db.SelectContext(ctx, &quotes, query, limit); err != nil {
		return nil, err
	}

	return quotes, nil
}

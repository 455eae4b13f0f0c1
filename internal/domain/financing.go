package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanParameters holds the raw inputs of a financing simulation. DownPayment
// is an absolute currency amount, not a percentage.
type LoanParameters struct {
	VehiclePrice              decimal.Decimal `json:"vehicle_price"`
	DownPayment               decimal.Decimal `json:"down_payment"`
	InterestRateAnnualPercent decimal.Decimal `json:"interest_rate_annual_percent"`
	Installments              int             `json:"installments"`
	DealerFee                 decimal.Decimal `json:"dealer_fee"`
	RegistrationFee           decimal.Decimal `json:"registration_fee"`
	OtherFees                 decimal.Decimal `json:"other_fees"`
	TaxRatePercent            decimal.Decimal `json:"tax_rate_percent"`
}

// LoanResult is the fully derived cost breakdown of a simulation. It has no
// lifecycle of its own; every field follows from LoanParameters.
type LoanResult struct {
	DownPaymentAmount decimal.Decimal `json:"down_payment_amount"`
	TotalTaxes        decimal.Decimal `json:"total_taxes"`
	TotalFees         decimal.Decimal `json:"total_fees"`
	FinancedAmount    decimal.Decimal `json:"financed_amount"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
}

// Quote is a persisted financing simulation.
type Quote struct {
	ID                        uuid.UUID       `json:"id" db:"id"`
	VehiclePrice              decimal.Decimal `json:"vehicle_price" db:"vehicle_price"`
	DownPayment               decimal.Decimal `json:"down_payment" db:"down_payment"`
	InterestRateAnnualPercent decimal.Decimal `json:"interest_rate_annual_percent" db:"interest_rate_annual_percent"`
	Installments              int             `json:"installments" db:"installments"`
	DealerFee                 decimal.Decimal `json:"dealer_fee" db:"dealer_fee"`
	RegistrationFee           decimal.Decimal `json:"registration_fee" db:"registration_fee"`
	OtherFees                 decimal.Decimal `json:"other_fees" db:"other_fees"`
	TaxRatePercent            decimal.Decimal `json:"tax_rate_percent" db:"tax_rate_percent"`
	FinancedAmount            decimal.Decimal `json:"financed_amount" db:"financed_amount"`
	MonthlyPayment            decimal.Decimal `json:"monthly_payment" db:"monthly_payment"`
	TotalAmount               decimal.Decimal `json:"total_amount" db:"total_amount"`
	CreatedAt                 time.Time       `json:"created_at" db:"created_at"`
}

// DTOs for requests and responses

type QuoteRequest struct {
	VehiclePrice              decimal.Decimal `json:"vehicle_price" validate:"required"`
	DownPayment               decimal.Decimal `json:"down_payment"`
	InterestRateAnnualPercent decimal.Decimal `json:"interest_rate_annual_percent"`
	Installments              int             `json:"installments" validate:"required,gte=1"`
	DealerFee                 decimal.Decimal `json:"dealer_fee"`
	RegistrationFee           decimal.Decimal `json:"registration_fee"`
	OtherFees                 decimal.Decimal `json:"other_fees"`
	TaxRatePercent            decimal.Decimal `json:"tax_rate_percent"`
}

// Parameters converts the request DTO into engine input.
func (r *QuoteRequest) Parameters() LoanParameters {
	return LoanParameters{
		VehiclePrice:              r.VehiclePrice,
		DownPayment:               r.DownPayment,
		InterestRateAnnualPercent: r.InterestRateAnnualPercent,
		Installments:              r.Installments,
		DealerFee:                 r.DealerFee,
		RegistrationFee:           r.RegistrationFee,
		OtherFees:                 r.OtherFees,
		TaxRatePercent:            r.TaxRatePercent,
	}
}

type QuoteResponse struct {
	Quote  *Quote     `json:"quote"`
	Result LoanResult `json:"result"`
}

package financing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ComputeLoan derives the full cost breakdown of a financing simulation.
// Pure and deterministic: no I/O, no shared state, safe to call concurrently.
//
// Callers are responsible for rejecting vehiclePrice <= 0 and installments < 1
// before invoking; the engine does not enforce those preconditions. A down
// payment larger than price + taxes + fees yields a negative financed amount,
// which is propagated unclamped into the monthly payment.
func ComputeLoan(p domain.LoanParameters) domain.LoanResult {
	totalTaxes := p.VehiclePrice.Mul(p.TaxRatePercent).Div(hundred)
	totalFees := p.DealerFee.Add(p.RegistrationFee).Add(p.OtherFees)
	financed := p.VehiclePrice.Sub(p.DownPayment).Add(totalTaxes).Add(totalFees)

	monthly := monthlyPayment(financed, p.InterestRateAnnualPercent, p.Installments)
	total := p.DownPayment.Add(monthly.Mul(decimal.NewFromInt(int64(p.Installments))))

	return domain.LoanResult{
		DownPaymentAmount: p.DownPayment,
		TotalTaxes:        totalTaxes,
		TotalFees:         totalFees,
		FinancedAmount:    financed,
		MonthlyPayment:    monthly,
		TotalAmount:       total,
	}
}

// monthlyPayment applies the standard fixed-payment amortization formula
//
//	payment = F * r * (1+r)^n / ((1+r)^n - 1)
//
// with r = annualPercent/100/12. The power factor is computed in float64; the
// surrounding arithmetic stays in decimal. A zero monthly rate degenerates the
// formula to 0/0, so it falls back to an even split of the financed amount.
func monthlyPayment(financed decimal.Decimal, annualPercent decimal.Decimal, installments int) decimal.Decimal {
	monthlyRate := annualPercent.InexactFloat64() / 100 / 12
	if monthlyRate == 0 {
		return financed.Div(decimal.NewFromInt(int64(installments)))
	}

	factor := math.Pow(1+monthlyRate, float64(installments))
	payment := financed.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment)
}

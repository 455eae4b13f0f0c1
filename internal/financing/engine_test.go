package financing

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

func params(price, down, rate float64, installments int, dealer, reg, other, tax float64) domain.LoanParameters {
	return domain.LoanParameters{
		VehiclePrice:              decimal.NewFromFloat(price),
		DownPayment:               decimal.NewFromFloat(down),
		InterestRateAnnualPercent: decimal.NewFromFloat(rate),
		Installments:              installments,
		DealerFee:                 decimal.NewFromFloat(dealer),
		RegistrationFee:           decimal.NewFromFloat(reg),
		OtherFees:                 decimal.NewFromFloat(other),
		TaxRatePercent:            decimal.NewFromFloat(tax),
	}
}

func TestComputeLoan_Breakdown(t *testing.T) {
	result := ComputeLoan(params(30000, 5000, 12, 48, 500, 350, 150, 8))

	// taxes = 30000 * 8% = 2400, fees = 1000, financed = 30000 - 5000 + 2400 + 1000
	assert.True(t, result.TotalTaxes.Equal(decimal.NewFromInt(2400)), "taxes: %s", result.TotalTaxes)
	assert.True(t, result.TotalFees.Equal(decimal.NewFromInt(1000)), "fees: %s", result.TotalFees)
	assert.True(t, result.FinancedAmount.Equal(decimal.NewFromInt(28400)), "financed: %s", result.FinancedAmount)
	assert.True(t, result.DownPaymentAmount.Equal(decimal.NewFromInt(5000)))

	// totalAmount = down + monthly * n
	expectedTotal := result.DownPaymentAmount.Add(result.MonthlyPayment.Mul(decimal.NewFromInt(48)))
	assert.True(t, result.TotalAmount.Equal(expectedTotal))
}

func TestComputeLoan_AmortizationIdentity(t *testing.T) {
	tests := []struct {
		name         string
		financed     float64
		annualRate   float64
		installments int
	}{
		{"small short loan", 10000, 12, 12},
		{"typical vehicle loan", 28400, 12, 48},
		{"high rate", 15000, 36.5, 24},
		{"single installment", 5000, 10, 1},
		{"long term", 80000, 7.9, 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params(tt.financed, 0, tt.annualRate, tt.installments, 0, 0, 0, 0)
			result := ComputeLoan(p)

			r := tt.annualRate / 100 / 12
			factor := math.Pow(1+r, float64(tt.installments))
			payment := result.MonthlyPayment.InexactFloat64()

			// payment * ((1+r)^n - 1) == financed * r * (1+r)^n
			lhs := payment * (factor - 1)
			rhs := tt.financed * r * factor
			assert.InDelta(t, rhs, lhs, 1e-6*math.Abs(rhs)+1e-9)
		})
	}
}

func TestComputeLoan_ZeroRateEvenSplit(t *testing.T) {
	result := ComputeLoan(params(24000, 4000, 0, 10, 0, 0, 0, 0))

	// financed = 20000, split evenly over 10 months
	assert.True(t, result.MonthlyPayment.Equal(decimal.NewFromInt(2000)), "monthly: %s", result.MonthlyPayment)
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(24000)), "total: %s", result.TotalAmount)
}

func TestComputeLoan_ZeroRateUnevenSplit(t *testing.T) {
	result := ComputeLoan(params(1000, 0, 0, 3, 0, 0, 0, 0))

	expected := decimal.NewFromInt(1000).Div(decimal.NewFromInt(3))
	assert.True(t, result.MonthlyPayment.Equal(expected), "monthly: %s", result.MonthlyPayment)
}

func TestComputeLoan_FeeAdditivity(t *testing.T) {
	tests := []struct {
		name                                 string
		price, down, dealer, reg, other, tax float64
		expectedFinanced                     float64
	}{
		{"no fees no tax", 20000, 2000, 0, 0, 0, 0, 18000},
		{"fees only", 20000, 0, 300, 200, 100, 0, 20600},
		{"tax only", 10000, 0, 0, 0, 0, 6.25, 10625},
		{"everything", 50000, 10000, 1000, 500, 250, 10, 46750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeLoan(params(tt.price, tt.down, 12, 12, tt.dealer, tt.reg, tt.other, tt.tax))
			assert.True(t, result.FinancedAmount.Equal(decimal.NewFromFloat(tt.expectedFinanced)),
				"financed: %s", result.FinancedAmount)
		})
	}
}

func TestComputeLoan_NegativeFinancedPropagates(t *testing.T) {
	// Down payment exceeds price + taxes + fees: the engine does not clamp.
	result := ComputeLoan(params(10000, 15000, 12, 12, 0, 0, 0, 0))

	assert.True(t, result.FinancedAmount.IsNegative(), "financed: %s", result.FinancedAmount)
	assert.True(t, result.MonthlyPayment.IsNegative(), "monthly: %s", result.MonthlyPayment)
}

func TestComputeLoan_Deterministic(t *testing.T) {
	p := params(30000, 5000, 12, 48, 500, 350, 150, 8)
	first := ComputeLoan(p)
	second := ComputeLoan(p)

	assert.True(t, first.MonthlyPayment.Equal(second.MonthlyPayment))
	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanTerms describes a fixed-rate amortizing loan. Immutable once a simulation runs.
type LoanTerms struct {
	Principal  decimal.Decimal `json:"principal"`
	AnnualRate decimal.Decimal `json:"annualRate"` // fraction, e.g. 0.026 for 2.6%
	TermMonths int             `json:"termMonths"`
	Start      time.Time       `json:"start"`
}

// MonthlyRate returns the per-period interest rate (annual rate / 12).
func (t LoanTerms) MonthlyRate() decimal.Decimal {
	return t.AnnualRate.Div(decimal.NewFromInt(12))
}

// AmortizationRow is one period of the loan repayment schedule.
// Payment = Principal + Interest for every row; Balance is non-increasing
// and exactly zero after the final row.
type AmortizationRow struct {
	Period    int             `json:"period"` // 1-based
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

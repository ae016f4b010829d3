// Package schedule generates the fixed monthly repayment schedule for a
// fixed-rate amortizing loan.
package schedule

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/loansim/internal/domain"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// Generate produces one AmortizationRow per period of the loan term.
//
// The nominal level payment comes from the standard annuity formula, ceiled to
// a whole currency unit. Each period's interest and principal portions are
// ceiled independently. The final period settles whatever balance remains:
// its principal portion is the remaining balance itself and its payment is
// recomputed, so the final row's payment generally differs from the level
// payment. The same clamp applies early whenever the balance drops below the
// computed principal portion; the reduced payment then carries forward and
// any trailing rows show zero dues.
//
// A non-positive principal or term yields an empty schedule rather than an
// error: downstream stages treat the empty ledger as the "nothing to simulate"
// state.
func Generate(terms domain.LoanTerms) []domain.AmortizationRow {
	if terms.TermMonths <= 0 || !terms.Principal.IsPositive() {
		return nil
	}

	payment := domain.CeilCurrency(levelPayment(terms.Principal, terms.MonthlyRate(), terms.TermMonths))

	rows := make([]domain.AmortizationRow, 0, terms.TermMonths)
	balance := terms.Principal

	for period := 1; period <= terms.TermMonths; period++ {
		// Multiply before dividing so exact monthly interest amounts stay
		// exact; dividing the rate first rounds it and can tip the ceiling
		// over an integer boundary.
		interest := domain.CeilCurrency(balance.Mul(terms.AnnualRate).Div(twelve))
		principal := domain.CeilCurrency(payment.Sub(interest))

		if period == terms.TermMonths || balance.LessThan(principal) {
			principal = balance
			payment = principal.Add(interest)
		}

		balance = balance.Sub(principal)
		rows = append(rows, domain.AmortizationRow{
			Period:    period,
			Payment:   payment,
			Principal: principal,
			Interest:  interest,
			Balance:   decimal.Max(balance, decimal.Zero),
		})
	}

	return rows
}

// levelPayment computes the annuity payment that repays principal over n
// periods at the given per-period rate. A zero rate degenerates to straight
// division.
func levelPayment(principal, rate decimal.Decimal, n int) decimal.Decimal {
	if rate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n)))
	}
	// payment = P * r * (1+r)^n / ((1+r)^n - 1)
	growth := one.Add(rate).Pow(decimal.NewFromInt(int64(n)))
	return principal.Mul(rate).Mul(growth).Div(growth.Sub(one))
}

// Package scenario defines the typed input a front end supplies to the
// simulator: loan parameters, the holdings table and the events table.
// Validation is deliberately minimal; out-of-horizon dates and odd amounts
// pass through and simply contribute nothing downstream.
package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/loansim/internal/domain"
)

// Front-end defaults for the loan parameter form.
var (
	DefaultPrincipal   = decimal.NewFromInt(3_000_000)
	DefaultRatePercent = decimal.RequireFromString("2.6")
	DefaultTermYears   = 10
	DefaultStart       = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
)

// Scenario is one complete simulation input.
type Scenario struct {
	Loan        LoanInput        `json:"loan"`
	InitialFund *decimal.Decimal `json:"initialFund,omitempty"` // defaults to the principal
	Holdings    []HoldingRow     `json:"holdings,omitempty"`
	Events      []EventRow       `json:"events,omitempty"`
}

// LoanInput mirrors the loan parameter form: the rate is entered in percent
// and the term in years. Omitted fields take the form defaults.
type LoanInput struct {
	Principal   *decimal.Decimal `json:"principal,omitempty"`
	RatePercent *decimal.Decimal `json:"ratePercent,omitempty"`
	TermYears   *int             `json:"termYears,omitempty"`
	Start       *time.Time       `json:"start,omitempty"`
}

// HoldingRow is one row of the holdings table.
type HoldingRow struct {
	Name      string          `json:"name"`
	Invested  decimal.Decimal `json:"invested"`
	Shares    decimal.Decimal `json:"shares"`
	Payout    decimal.Decimal `json:"payout"`
	Frequency string          `json:"frequency"` // monthly | quarterly | annual
	Start     time.Time       `json:"start"`
}

// EventRow is one row of the one-off income/expense table.
type EventRow struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Kind   string          `json:"kind"` // income | expense
	Date   time.Time       `json:"date"`
}

// Terms resolves the loan input into simulation terms: defaults applied,
// percent converted to a fraction, years converted to months.
func (s Scenario) Terms() domain.LoanTerms {
	principal := DefaultPrincipal
	if s.Loan.Principal != nil {
		principal = *s.Loan.Principal
	}
	ratePercent := DefaultRatePercent
	if s.Loan.RatePercent != nil {
		ratePercent = *s.Loan.RatePercent
	}
	years := DefaultTermYears
	if s.Loan.TermYears != nil {
		years = *s.Loan.TermYears
	}
	start := DefaultStart
	if s.Loan.Start != nil {
		start = domain.UTCDate(*s.Loan.Start)
	}

	return domain.LoanTerms{
		Principal:  principal,
		AnnualRate: ratePercent.Div(decimal.NewFromInt(100)),
		TermMonths: years * 12,
		Start:      start,
	}
}

// Fund resolves the initial disposable fund, defaulting to the principal.
func (s Scenario) Fund() decimal.Decimal {
	if s.InitialFund != nil {
		return *s.InitialFund
	}
	return s.Terms().Principal
}

// DomainHoldings converts the holdings table into domain values.
func (s Scenario) DomainHoldings() []domain.Holding {
	holdings := make([]domain.Holding, 0, len(s.Holdings))
	for _, r := range s.Holdings {
		holdings = append(holdings, domain.Holding{
			Name:      r.Name,
			Invested:  r.Invested,
			Shares:    r.Shares,
			Payout:    r.Payout,
			Frequency: domain.ParseFrequency(r.Frequency),
			Start:     domain.UTCDate(r.Start),
		})
	}
	return holdings
}

// DomainEvents converts the events table into domain values. Unknown kinds
// count as income (the sign is only flipped for expenses).
func (s Scenario) DomainEvents() []domain.CashEvent {
	events := make([]domain.CashEvent, 0, len(s.Events))
	for _, r := range s.Events {
		kind := domain.Income
		if r.Kind == string(domain.Expense) {
			kind = domain.Expense
		}
		events = append(events, domain.CashEvent{
			Label:  r.Label,
			Amount: r.Amount,
			Kind:   kind,
			Date:   domain.UTCDate(r.Date),
		})
	}
	return events
}

// Decode reads a scenario from JSON.
func Decode(r io.Reader) (Scenario, error) {
	var s Scenario
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("decoding scenario: %w", err)
	}
	return s, nil
}

// Load reads a scenario from a JSON file.
func Load(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

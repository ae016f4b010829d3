package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one period of the simulation output: the loan dues, dividend
// income and one-off adjustments for the period, and the cumulative disposable
// fund after applying them.
type LedgerRow struct {
	Period     int             `json:"period"`
	Date       time.Time       `json:"date"`
	Principal  decimal.Decimal `json:"principal"`
	Interest   decimal.Decimal `json:"interest"`
	Dividend   decimal.Decimal `json:"dividend"`
	Adjustment decimal.Decimal `json:"adjustment"`
	Fund       decimal.Decimal `json:"fund"`
}

// SimulationResult is the full ordered ledger produced by one accumulation
// run. Immutable once produced; each recompute replaces it wholesale. Two
// runs over identical inputs produce identical results.
type SimulationResult struct {
	Rows          []LedgerRow     `json:"rows"`
	TotalInvested decimal.Decimal `json:"totalInvested"`

	// Occurrences whose dates did not land exactly on a period date are
	// dropped from the ledger; these counters surface the drops to the user.
	SkippedEvents        int `json:"skippedEvents"`
	SkippedDistributions int `json:"skippedDistributions"`
}

// Summary holds the terminal metrics derived from a simulation result.
type Summary struct {
	TotalInvested decimal.Decimal `json:"totalInvested"`
	FinalFund     decimal.Decimal `json:"finalFund"`
	Profit        decimal.Decimal `json:"profit"`
	Success       bool            `json:"success"`
}

// Package export writes a simulation ledger to spreadsheet destinations.
package export

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/finplan/loansim/internal/domain"
	"github.com/finplan/loansim/internal/report"
)

// LedgerWriter writes a simulation result to a spreadsheet destination.
type LedgerWriter interface {
	Write(ctx context.Context, result domain.SimulationResult) error
}

var ledgerHeader = []any{"Period", "Date", "Principal", "Interest", "Dividend", "Adjustment", "Disposable fund"}

// buildLedgerRows builds the Ledger sheet data, header first.
func buildLedgerRows(result domain.SimulationResult) [][]any {
	data := make([][]any, 0, len(result.Rows)+1)
	data = append(data, ledgerHeader)
	for _, r := range result.Rows {
		data = append(data, []any{
			r.Period,
			r.Date.Format("2006-01-02"),
			toFloat(r.Principal),
			toFloat(r.Interest),
			toFloat(r.Dividend),
			toFloat(r.Adjustment),
			toFloat(r.Fund),
		})
	}
	return data
}

// buildSummaryRows builds the Summary sheet data: the four terminal metrics
// and the dropped-occurrence counters. An empty ledger yields an
// informational row instead.
func buildSummaryRows(result domain.SimulationResult) [][]any {
	summary, err := report.Summarize(result)
	if errors.Is(err, report.ErrNoResult) {
		return [][]any{{"No result available, run the simulation first"}}
	}

	verdict := "failure"
	if summary.Success {
		verdict = "success"
	}
	return [][]any{
		{"Total invested", toFloat(summary.TotalInvested)},
		{"Final disposable fund", toFloat(summary.FinalFund)},
		{"Profit", toFloat(summary.Profit)},
		{"Verdict", verdict},
		{"Skipped events", result.SkippedEvents},
		{"Skipped distributions", result.SkippedDistributions},
	}
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

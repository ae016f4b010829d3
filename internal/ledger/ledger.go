// Package ledger merges the amortization schedule, dividend income and one-off
// cash events into the cumulative disposable-fund series.
package ledger

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finplan/loansim/internal/dividend"
	"github.com/finplan/loansim/internal/domain"
	"github.com/finplan/loansim/internal/grid"
)

// Accumulate produces the full simulation ledger. One row per schedule
// period; the cumulative fund obeys
//
//	fund(i) = fund(i-1) - principal(i) - interest(i) + dividend(i) + adjustment(i)
//
// seeded with the initial fund minus the total invested capital. Events whose
// dates do not land exactly on a grid date are dropped (and counted); the
// domain tolerates an incomplete projection better than a failed one. The
// result is deterministic and carries no state between invocations.
func Accumulate(schedule []domain.AmortizationRow, holdings []domain.Holding, events []domain.CashEvent, initialFund decimal.Decimal, g *grid.Grid) domain.SimulationResult {
	totalInvested := dividend.TotalInvested(holdings)
	dividends, skippedDist := dividend.Project(holdings, g)
	adjustments, skippedEvents := placeEvents(events, g)

	rows := make([]domain.LedgerRow, 0, len(schedule))
	fund := initialFund.Sub(totalInvested)

	for _, r := range schedule {
		div := dividends[r.Period]
		adj := adjustments[r.Period]
		fund = fund.Sub(r.Principal).Sub(r.Interest).Add(div).Add(adj)

		rows = append(rows, domain.LedgerRow{
			Period:     r.Period,
			Date:       g.Date(r.Period),
			Principal:  r.Principal,
			Interest:   r.Interest,
			Dividend:   div,
			Adjustment: adj,
			Fund:       fund,
		})
	}

	return domain.SimulationResult{
		Rows:                 rows,
		TotalInvested:        totalInvested,
		SkippedEvents:        skippedEvents,
		SkippedDistributions: skippedDist,
	}
}

// placeEvents maps each cash event onto its grid period, summing events that
// land on the same period. Unmatched events are dropped and counted.
func placeEvents(events []domain.CashEvent, g *grid.Grid) (byPeriod map[int]decimal.Decimal, skipped int) {
	byPeriod = make(map[int]decimal.Decimal)
	for _, e := range events {
		p, ok := g.PeriodOf(e.Date)
		if !ok {
			slog.Warn("cash event date does not fall on a period date, dropping",
				"label", e.Label, "date", e.Date.Format("2006-01-02"))
			skipped++
			continue
		}
		byPeriod[p] = byPeriod[p].Add(e.Signed())
	}
	return byPeriod, skipped
}

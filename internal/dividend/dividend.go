// Package dividend projects recurring dividend distributions onto the period
// grid.
package dividend

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/finplan/loansim/internal/domain"
	"github.com/finplan/loansim/internal/grid"
)

// DistributionDates returns every distribution date of a holding up to and
// including the horizon: the holding's first distribution date, then
// successive dates advanced by its frequency in calendar months. The result
// is bounded by construction; a holding starting after the horizon has no
// dates. A zero or negative frequency yields only the first date, so a
// malformed holding cannot loop.
func DistributionDates(h domain.Holding, horizon time.Time) []time.Time {
	var dates []time.Time
	step := h.Frequency.Months()
	for d := domain.UTCDate(h.Start); !d.After(horizon); d = domain.AddMonths(d, step) {
		dates = append(dates, d)
		if step <= 0 {
			break
		}
	}
	return dates
}

// Project aggregates the per-period dividend income of a set of holdings.
// Each distribution contributes ceil(payout x shares) to the period whose
// date exactly matches the distribution date; holdings landing on the same
// period sum additively. The map is sparse: periods with no dividend are
// absent. Distributions that miss the grid contribute nothing; skipped counts
// them so callers can surface the drops.
func Project(holdings []domain.Holding, g *grid.Grid) (byPeriod map[int]decimal.Decimal, skipped int) {
	byPeriod = make(map[int]decimal.Decimal)
	horizon := g.Horizon()
	if horizon.IsZero() {
		return byPeriod, 0
	}

	for _, h := range holdings {
		amount := domain.CeilCurrency(h.Payout.Mul(h.Shares))
		for _, d := range DistributionDates(h, horizon) {
			p, ok := g.PeriodOf(d)
			if !ok {
				skipped++
				continue
			}
			byPeriod[p] = byPeriod[p].Add(amount)
		}
	}
	return byPeriod, skipped
}

// TotalInvested sums the capital committed across all holdings.
func TotalInvested(holdings []domain.Holding) decimal.Decimal {
	return lo.Reduce(holdings, func(acc decimal.Decimal, h domain.Holding, _ int) decimal.Decimal {
		return acc.Add(h.Invested)
	}, decimal.Zero)
}

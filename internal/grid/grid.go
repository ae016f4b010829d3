// Package grid maps loan period numbers onto calendar dates.
package grid

import (
	"time"

	"github.com/finplan/loansim/internal/domain"
)

// Grid is the fixed monthly period grid of a simulation: period p maps to the
// loan start date advanced by p-1 calendar months. Lookups by date are exact:
// a date between two period dates belongs to neither.
type Grid struct {
	dates  []time.Time
	byDate map[time.Time]int
}

// New builds the grid for a loan starting at start with termMonths periods.
// A non-positive term yields an empty grid.
func New(start time.Time, termMonths int) *Grid {
	g := &Grid{byDate: make(map[time.Time]int, max(termMonths, 0))}
	for p := 1; p <= termMonths; p++ {
		d := domain.AddMonths(start, p-1)
		g.dates = append(g.dates, d)
		g.byDate[d] = p
	}
	return g
}

// Len returns the number of periods in the grid.
func (g *Grid) Len() int { return len(g.dates) }

// Date returns the calendar date of a period. Periods outside 1..Len yield
// the zero time.
func (g *Grid) Date(period int) time.Time {
	if period < 1 || period > len(g.dates) {
		return time.Time{}
	}
	return g.dates[period-1]
}

// Horizon returns the date of the last period, or the zero time for an empty
// grid.
func (g *Grid) Horizon() time.Time {
	if len(g.dates) == 0 {
		return time.Time{}
	}
	return g.dates[len(g.dates)-1]
}

// PeriodOf returns the period whose date exactly equals d. There is no
// nearest-period fallback: dates that miss the grid report ok=false and the
// caller decides what to do with the occurrence.
func (g *Grid) PeriodOf(d time.Time) (int, bool) {
	p, ok := g.byDate[domain.UTCDate(d)]
	return p, ok
}

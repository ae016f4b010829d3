// Package report derives the terminal metrics of a simulation.
package report

import (
	"errors"

	"github.com/finplan/loansim/internal/domain"
)

// ErrNoResult indicates that no simulation has produced a ledger yet; the
// caller should prompt the user to run the simulation first.
var ErrNoResult = errors.New("no simulation result available")

// Summarize computes the terminal metrics from a simulation result: the final
// disposable fund, the total invested capital, and the net profit
// (final fund minus invested). The verdict is success when profit is
// non-negative. An empty ledger reports ErrNoResult rather than panicking on
// the missing final row.
func Summarize(result domain.SimulationResult) (domain.Summary, error) {
	if len(result.Rows) == 0 {
		return domain.Summary{}, ErrNoResult
	}

	finalFund := result.Rows[len(result.Rows)-1].Fund
	profit := finalFund.Sub(result.TotalInvested)

	return domain.Summary{
		TotalInvested: result.TotalInvested,
		FinalFund:     finalFund,
		Profit:        profit,
		Success:       !profit.IsNegative(),
	}, nil
}

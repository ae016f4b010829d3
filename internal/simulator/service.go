// Package simulator orchestrates the simulation pipeline and keeps the
// session's results.
package simulator

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/finplan/loansim/internal/domain"
	"github.com/finplan/loansim/internal/grid"
	"github.com/finplan/loansim/internal/ledger"
	"github.com/finplan/loansim/internal/report"
	"github.com/finplan/loansim/internal/scenario"
	"github.com/finplan/loansim/internal/schedule"
)

// ErrBusy indicates that a recompute is already in progress. Recompute is an
// atomic unit of work; a second trigger is rejected rather than interleaved.
var ErrBusy = errors.New("a simulation is already running")

// Service runs the full pipeline (schedule, grid, dividends, accumulation)
// and stores each result in the session repository.
type Service struct {
	repo    Repository
	running sync.Mutex
}

// NewService creates a simulator backed by the given run repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Run executes one simulation for the scenario and stores the result, which
// replaces the previous latest wholesale. Returns ErrBusy if a run is already
// in progress.
func (s *Service) Run(ctx context.Context, sc scenario.Scenario) (Run, error) {
	if !s.running.TryLock() {
		return Run{}, ErrBusy
	}
	defer s.running.Unlock()

	if err := ctx.Err(); err != nil {
		return Run{}, err
	}

	terms := sc.Terms()
	rows := schedule.Generate(terms)
	g := grid.New(terms.Start, terms.TermMonths)

	result := ledger.Accumulate(rows, sc.DomainHoldings(), sc.DomainEvents(), sc.Fund(), g)
	run := s.repo.Save(result)

	slog.Info("simulation completed",
		"run", run.ID,
		"periods", len(result.Rows),
		"invested", result.TotalInvested.String(),
		"skippedEvents", result.SkippedEvents,
		"skippedDistributions", result.SkippedDistributions)

	return run, nil
}

// Latest returns the most recent stored run.
func (s *Service) Latest() (Run, error) {
	return s.repo.Latest()
}

// Summary summarizes the most recent run. Reports report.ErrNoResult when
// nothing has run yet or the latest ledger is empty.
func (s *Service) Summary() (domain.Summary, error) {
	run, err := s.repo.Latest()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Summary{}, report.ErrNoResult
		}
		return domain.Summary{}, err
	}
	return report.Summarize(run.Result)
}

// List returns metadata for recent runs.
func (s *Service) List(limit int) []RunMeta {
	return s.repo.List(limit)
}

package simulator

import (
	"errors"
	"sync"
	"time"

	"github.com/finplan/loansim/internal/domain"
)

// ErrNotFound indicates that no simulation run is stored yet.
var ErrNotFound = errors.New("simulation run not found")

// Run is a stored simulation run.
type Run struct {
	ID          int                     `json:"id"`
	Result      domain.SimulationResult `json:"result"`
	GeneratedAt time.Time               `json:"generatedAt"`
}

// RunMeta is the listing view of a run: everything but the ledger rows.
type RunMeta struct {
	ID          int       `json:"id"`
	Periods     int       `json:"periods"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Repository stores simulation runs for the current session.
type Repository interface {
	Save(result domain.SimulationResult) Run
	Latest() (Run, error)
	List(limit int) []RunMeta
}

// MemoryRepository keeps runs in memory only. Results never survive a
// restart; durable storage is out of scope for the simulator.
type MemoryRepository struct {
	mu     sync.RWMutex
	runs   []Run
	nextID int
}

// NewMemoryRepository creates an empty in-memory run repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Save appends a run and returns it with its assigned ID.
func (r *MemoryRepository) Save(result domain.SimulationResult) Run {
	r.mu.Lock()
	defer r.mu.Unlock()
	run := Run{ID: r.nextID, Result: result, GeneratedAt: time.Now().UTC()}
	r.nextID++
	r.runs = append(r.runs, run)
	return run
}

// Latest returns the most recent run.
func (r *MemoryRepository) Latest() (Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.runs) == 0 {
		return Run{}, ErrNotFound
	}
	return r.runs[len(r.runs)-1], nil
}

// List returns metadata for the most recent runs, newest first.
func (r *MemoryRepository) List(limit int) []RunMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()

	metas := make([]RunMeta, 0, min(limit, len(r.runs)))
	for i := len(r.runs) - 1; i >= 0 && len(metas) < limit; i-- {
		run := r.runs[i]
		metas = append(metas, RunMeta{
			ID:          run.ID,
			Periods:     len(run.Result.Rows),
			GeneratedAt: run.GeneratedAt,
		})
	}
	return metas
}

package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/finplan/loansim/internal/report"
	"github.com/finplan/loansim/internal/scenario"
	"github.com/finplan/loansim/internal/simulator"
)

// Handler provides HTTP endpoints for the simulation API.
type Handler struct {
	sim *simulator.Service
}

// NewHandler creates a new API handler.
func NewHandler(sim *simulator.Service) *Handler {
	return &Handler{sim: sim}
}

// RunSimulation handles POST /api/v1/simulations/run. The body is a scenario
// document; the response is the stored run with its full ledger.
func (h *Handler) RunSimulation(w http.ResponseWriter, r *http.Request) {
	sc, err := scenario.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scenario: "+err.Error())
		return
	}

	run, err := h.sim.Run(r.Context(), sc)
	if err != nil {
		if errors.Is(err, simulator.ErrBusy) {
			writeError(w, http.StatusConflict, "a simulation is already running")
			return
		}
		slog.Error("failed to run simulation", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// GetLatest handles GET /api/v1/simulations/latest.
func (h *Handler) GetLatest(w http.ResponseWriter, r *http.Request) {
	run, err := h.sim.Latest()
	if err != nil {
		if errors.Is(err, simulator.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no simulation yet, run one first")
			return
		}
		slog.Error("failed to get latest run", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// GetSummary handles GET /api/v1/simulations/latest/summary.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sim.Summary()
	if err != nil {
		if errors.Is(err, report.ErrNoResult) {
			writeError(w, http.StatusNotFound, "no simulation result available, run one first")
			return
		}
		slog.Error("failed to summarize latest run", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// ListRuns handles GET /api/v1/simulations.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	const maxLimit = 100
	limit := 30
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = min(n, maxLimit)
		}
	}
	writeJSON(w, http.StatusOK, h.sim.List(limit))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

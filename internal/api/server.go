// Package api exposes the simulator to an interactive front end over HTTP.
package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/finplan/loansim/internal/simulator"
)

// NewServer creates an HTTP server with all routes configured. When an admin
// API key is set, the recompute endpoint requires it.
func NewServer(port string, sim *simulator.Service, adminAPIKey string) *http.Server {
	handler := NewHandler(sim)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/simulations", handler.ListRuns)
	mux.HandleFunc("GET /api/v1/simulations/latest", handler.GetLatest)
	mux.HandleFunc("GET /api/v1/simulations/latest/summary", handler.GetSummary)

	runHandler := http.HandlerFunc(handler.RunSimulation)
	if adminAPIKey != "" {
		mux.Handle("POST /api/v1/simulations/run", requireAuth(adminAPIKey, runHandler))
	} else {
		mux.Handle("POST /api/v1/simulations/run", runHandler)
	}

	return &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func requireAuth(apiKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if !strings.HasPrefix(auth, "Bearer ") || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

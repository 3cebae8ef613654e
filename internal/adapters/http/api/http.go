// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/clincher/internal/domain/points"
	"github.com/okian/clincher/internal/domain/roster"
	"github.com/okian/clincher/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Contenders returns the active roster.
	Contenders(ctx context.Context) []roster.Contender

	// Simulate computes one manual what-if projection.
	Simulate(ctx context.Context, finishes map[string]points.Finish) (types.Projection, error)

	// WinningScenarios returns the summarized analysis for a target.
	WinningScenarios(ctx context.Context, targetID string) (types.Analysis, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	contendersHandler *ContendersHandler
	simulateHandler   *SimulateHandler
	scenariosHandler  *ScenariosHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		contendersHandler: NewContendersHandler(deps),
		simulateHandler:   NewSimulateHandler(deps),
		scenariosHandler:  NewScenariosHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/contenders", MetricsMiddleware(s.contendersHandler.HandleGetContenders, "contenders"))
	mux.HandleFunc("/simulate", MetricsMiddleware(s.simulateHandler.HandlePostSimulate, "simulate"))
	mux.HandleFunc("/scenarios/", MetricsMiddleware(s.scenariosHandler.HandleGetScenarios, "scenarios"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

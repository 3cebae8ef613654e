// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/okian/clincher/internal/adapters/repository"
	"github.com/okian/clincher/internal/domain/points"
	"github.com/okian/clincher/internal/domain/types"
)

// SimulateDependencies defines the interface for what-if simulations.
type SimulateDependencies interface {
	Simulate(ctx context.Context, finishes map[string]points.Finish) (types.Projection, error)
}

// SimulateHandler handles manual what-if requests.
type SimulateHandler struct {
	deps SimulateDependencies
}

// NewSimulateHandler creates a new simulate handler.
func NewSimulateHandler(deps SimulateDependencies) *SimulateHandler {
	return &SimulateHandler{deps: deps}
}

// simulateRequest mirrors the POST /simulate body. Finishes maps
// contender id to a finishing position; anything outside the scoring
// zone scores no points, and missing contenders default to the
// no-points sentinel.
type simulateRequest struct {
	Finishes map[string]int `json:"finishes"`
}

// HandlePostSimulate handles POST /simulate requests.
func (h *SimulateHandler) HandlePostSimulate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_simulate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	finishes := make(map[string]points.Finish, len(req.Finishes))
	for id, pos := range req.Finishes {
		finishes[id] = points.Finish(pos)
	}

	projection, err := h.deps.Simulate(r.Context(), finishes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "unknown_contender", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, projection)
}

// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	repository "github.com/okian/clincher/internal/adapters/repository"
	"github.com/okian/clincher/internal/domain/scenario"
	"github.com/okian/clincher/internal/domain/types"
)

// ScenariosDependencies defines the interface for scenario analyses.
type ScenariosDependencies interface {
	WinningScenarios(ctx context.Context, targetID string) (types.Analysis, error)
}

// ScenariosHandler handles scenario analysis requests.
type ScenariosHandler struct {
	deps ScenariosDependencies
}

// NewScenariosHandler creates a new scenarios handler.
func NewScenariosHandler(deps ScenariosDependencies) *ScenariosHandler {
	return &ScenariosHandler{deps: deps}
}

// HandleGetScenarios handles GET /scenarios/{contender_id} requests.
// An analysis with no winning scenarios is a 200 with empty groups,
// not an error.
func (h *ScenariosHandler) HandleGetScenarios(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_scenarios"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	targetID := strings.TrimPrefix(r.URL.Path, "/scenarios/")
	if targetID == "" || strings.Contains(targetID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	analysis, err := h.deps.WinningScenarios(r.Context(), targetID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
		case errors.Is(err, scenario.ErrTargetNotTracked), errors.Is(err, scenario.ErrTrackedCount):
			writeError(w, http.StatusUnprocessableEntity, "not_in_title_fight", Wrap(op, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/clincher/internal/domain/roster"
)

// ContendersDependencies defines the interface for roster reads.
type ContendersDependencies interface {
	Contenders(ctx context.Context) []roster.Contender
}

// ContendersHandler handles roster requests.
type ContendersHandler struct {
	deps ContendersDependencies
}

// NewContendersHandler creates a new contenders handler.
func NewContendersHandler(deps ContendersDependencies) *ContendersHandler {
	return &ContendersHandler{deps: deps}
}

type contendersResponse struct {
	Contenders []roster.Contender `json:"contenders"`
}

// HandleGetContenders handles GET /contenders requests.
func (h *ContendersHandler) HandleGetContenders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, contendersResponse{Contenders: h.deps.Contenders(r.Context())})
}

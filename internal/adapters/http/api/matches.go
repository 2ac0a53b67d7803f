// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// defaultMatchLimit applies when the limit query parameter is absent.
const defaultMatchLimit = 10

// MatchDependencies defines the interface for ranking operations.
type MatchDependencies interface {
	TopMatches(ctx context.Context, entityID string, n int, strategy string) ([]Match, error)
}

// MatchesHandler handles match ranking requests.
type MatchesHandler struct {
	deps MatchDependencies
}

// NewMatchesHandler creates a new matches handler.
func NewMatchesHandler(deps MatchDependencies) *MatchesHandler {
	return &MatchesHandler{deps: deps}
}

// HandleGetMatches handles GET /matches/{entity_id}?limit=N&strategy=S requests.
func (h *MatchesHandler) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	// Extract path parameter after /matches/
	entityID := strings.TrimPrefix(r.URL.Path, "/matches/")
	if entityID == "" || strings.Contains(entityID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	n := defaultMatchLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_limit", ErrBadRequest)
			return
		}
		n = parsed
	}

	strategy := r.URL.Query().Get("strategy")

	matches, err := h.deps.TopMatches(r.Context(), entityID, n, strategy)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

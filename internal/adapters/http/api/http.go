// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/okian/kindred/internal/adapters/repository"
	"github.com/okian/kindred/internal/domain/matching"
	"github.com/okian/kindred/internal/domain/model"
	"github.com/okian/kindred/internal/domain/types"
	"github.com/okian/kindred/internal/domain/vector"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// UpsertVector stores a preference vector for an entity.
	UpsertVector(ctx context.Context, entityID string, components []float64) error

	// Vector returns the stored profile for an entity.
	Vector(ctx context.Context, entityID string) (model.Profile, error)

	// Delete removes an entity and its vector.
	Delete(ctx context.Context, entityID string) error

	// TopMatches ranks the population against the reference entity.
	TopMatches(ctx context.Context, entityID string, n int, strategy string) ([]Match, error)
}

// Match mirrors the read shape returned by ranking queries.
type Match = types.Match

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	vectorsHandler *VectorsHandler
	matchesHandler *MatchesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		vectorsHandler: NewVectorsHandler(deps),
		matchesHandler: NewMatchesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/vectors/", MetricsMiddleware(s.vectorsHandler.HandleVector, "vectors"))
	mux.HandleFunc("/matches/", MetricsMiddleware(s.matchesHandler.HandleGetMatches, "matches"))
}

// vectorRequest mirrors the schema for PUT /vectors/{entity_id}.
type vectorRequest struct {
	Components []float64 `json:"components"`
}

type vectorResponse struct {
	EntityID   string    `json:"entity_id"`
	Components []float64 `json:"components"`
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

// writeDomainError translates domain errors to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, vector.ErrDimension), errors.Is(err, vector.ErrOutOfRange):
		writeError(w, http.StatusBadRequest, "invalid_vector", err)
	case errors.Is(err, matching.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, "invalid_limit", err)
	case errors.Is(err, matching.ErrUnknownStrategy):
		writeError(w, http.StatusBadRequest, "unknown_strategy", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

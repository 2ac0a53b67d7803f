// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/kindred/internal/domain/model"
)

// VectorDependencies defines the interface for vector operations.
type VectorDependencies interface {
	UpsertVector(ctx context.Context, entityID string, components []float64) error
	Vector(ctx context.Context, entityID string) (model.Profile, error)
	Delete(ctx context.Context, entityID string) error
}

// VectorsHandler handles vector CRUD requests.
type VectorsHandler struct {
	deps VectorDependencies
}

// NewVectorsHandler creates a new vectors handler.
func NewVectorsHandler(deps VectorDependencies) *VectorsHandler {
	return &VectorsHandler{deps: deps}
}

// HandleVector handles PUT, GET and DELETE /vectors/{entity_id} requests.
func (h *VectorsHandler) HandleVector(w http.ResponseWriter, r *http.Request) {
	// Extract path parameter after /vectors/
	entityID := strings.TrimPrefix(r.URL.Path, "/vectors/")
	if entityID == "" || strings.Contains(entityID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.handlePut(w, r, entityID)
	case http.MethodGet:
		h.handleGet(w, r, entityID)
	case http.MethodDelete:
		h.handleDelete(w, r, entityID)
	default:
		http.NotFound(w, r)
	}
}

func (h *VectorsHandler) handlePut(w http.ResponseWriter, r *http.Request, entityID string) {
	var req vectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	if err := h.deps.UpsertVector(r.Context(), entityID, req.Components); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vectorResponse{EntityID: entityID, Components: req.Components})
}

func (h *VectorsHandler) handleGet(w http.ResponseWriter, r *http.Request, entityID string) {
	profile, err := h.deps.Vector(r.Context(), entityID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vectorResponse{EntityID: profile.EntityID, Components: profile.Vector})
}

func (h *VectorsHandler) handleDelete(w http.ResponseWriter, r *http.Request, entityID string) {
	if err := h.deps.Delete(r.Context(), entityID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

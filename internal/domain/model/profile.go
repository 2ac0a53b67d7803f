// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/okian/kindred/internal/domain/vector"
)

// Profile binds an entity to its preference vector. An entity owns exactly
// one vector: they are created together and deleting the entity removes the
// vector with it.
type Profile struct {
	EntityID  string        // stable, externally assigned identity
	Vector    vector.Vector // preference components, validated at the boundary
	UpdatedAt time.Time     // last write, informational only
}

// EntityScore captures a candidate's similarity score against a reference
// entity, as produced by ranking.
type EntityScore struct {
	EntityID string
	Score    float64
}

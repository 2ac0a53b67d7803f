// Package repository defines the vector store interface and errors.
package repository

import (
	"context"

	"github.com/okian/kindred/internal/domain/model"
	"github.com/okian/kindred/internal/domain/vector"
)

// Store provides read/write access to entity preference vectors and
// storage-side score computation.
//
// Implementations must serve AllVectors and RankedScores from a consistent
// snapshot: a concurrent write must not corrupt a ranking computed over
// either bulk read. Both bulk calls honor ctx cancellation since they are
// the only potentially slow operations.
type Store interface {
	// PutVector creates or replaces the vector owned by entityID.
	PutVector(ctx context.Context, entityID string, v vector.Vector) error

	// Vector returns the vector owned by entityID.
	// Returns ErrNotFound if the entity has no stored vector.
	Vector(ctx context.Context, entityID string) (vector.Vector, error)

	// AllVectors returns every stored profile in one bulk read, ordered by
	// entity id ascending. Never requires one call per entity.
	AllVectors(ctx context.Context) ([]model.Profile, error)

	// RankedScores computes, inside the store, the similarity of every
	// candidate against referenceID using the exact scoring formula of the
	// domain scorer (same constants, same rounding), excluding the
	// reference itself. Results are ordered score descending, entity id
	// ascending, truncated to n.
	// Returns ErrNotFound if referenceID has no vector and ErrInvalidLimit
	// if n < 1.
	RankedScores(ctx context.Context, referenceID string, n int) ([]model.EntityScore, error)

	// Delete removes the entity and its vector together.
	// Returns ErrNotFound if the entity is unknown.
	Delete(ctx context.Context, entityID string) error

	// Count returns the number of entities with a stored vector.
	Count(ctx context.Context) int

	// Close releases store resources.
	Close() error
}

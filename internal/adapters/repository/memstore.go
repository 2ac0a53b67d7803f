package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/okian/kindred/internal/domain/model"
	"github.com/okian/kindred/internal/domain/scoring"
	"github.com/okian/kindred/internal/domain/vector"
	"github.com/okian/kindred/pkg/metrics"
)

// In-memory Store implementation.
//
// Ordering: bulk reads return entity id ASC; ranked reads return score
// DESC, then entity id ASC (deterministic). Bulk reads copy under the read
// lock so a concurrent write never corrupts a ranking computed over them.

// MemStore keeps all profiles in a mutex-guarded map. It delegates
// RankedScores to the domain scorer, so the "storage side" of the pushdown
// contract is the same code path the in-process strategy uses.
type MemStore struct {
	mu       sync.RWMutex
	profiles map[string]model.Profile
	scorer   *scoring.Scorer
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(ctx context.Context, opts ...Option) *MemStore {
	cfg := newSettings(opts...)
	s := &MemStore{
		profiles: make(map[string]model.Profile),
		scorer:   scoring.New(scoring.WithVariant(cfg.variant)),
	}
	metrics.UpdateStoreRecordsTotal(0)
	return s
}

// PutVector creates or replaces the vector owned by entityID.
func (s *MemStore) PutVector(ctx context.Context, entityID string, v vector.Vector) error {
	start := time.Now()
	defer func() {
		metrics.RecordStoreUpdateLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	s.mu.Lock()
	s.profiles[entityID] = model.Profile{
		EntityID:  entityID,
		Vector:    v.Clone(),
		UpdatedAt: time.Now(),
	}
	total := len(s.profiles)
	s.mu.Unlock()

	metrics.UpdateStoreRecordsTotal(total)
	return nil
}

// Vector returns the vector owned by entityID.
func (s *MemStore) Vector(ctx context.Context, entityID string) (vector.Vector, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	s.mu.RLock()
	p, ok := s.profiles[entityID]
	s.mu.RUnlock()

	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return nil, fmt.Errorf("vector for %q: %w", entityID, ErrNotFound)
	}
	return p.Vector.Clone(), nil
}

// AllVectors returns every stored profile in one bulk read.
func (s *MemStore) AllVectors(ctx context.Context) ([]model.Profile, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("bulk read cancelled: %w", err)
	}

	out := s.snapshot()
	return out, nil
}

// snapshot copies all profiles under the read lock, ordered entity id ASC.
func (s *MemStore) snapshot() []model.Profile {
	s.mu.RLock()
	out := make([]model.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, model.Profile{
			EntityID:  p.EntityID,
			Vector:    p.Vector.Clone(),
			UpdatedAt: p.UpdatedAt,
		})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].EntityID < out[j].EntityID })
	return out
}

// RankedScores computes scores for every candidate against referenceID.
func (s *MemStore) RankedScores(ctx context.Context, referenceID string, n int) ([]model.EntityScore, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	if n < 1 {
		metrics.RecordErrorByComponent("repository", "invalid_limit")
		return nil, fmt.Errorf("limit %d: %w", n, ErrInvalidLimit)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ranked read cancelled: %w", err)
	}

	// One consistent snapshot for the whole computation.
	profiles := s.snapshot()

	var ref vector.Vector
	for _, p := range profiles {
		if p.EntityID == referenceID {
			ref = p.Vector
			break
		}
	}
	if ref == nil {
		metrics.RecordErrorByComponent("repository", "not_found")
		return nil, fmt.Errorf("vector for %q: %w", referenceID, ErrNotFound)
	}

	scored := make([]model.EntityScore, 0, len(profiles)-1)
	for _, p := range profiles {
		if p.EntityID == referenceID {
			continue
		}
		score, err := s.scorer.Score(ref, p.Vector)
		if err != nil {
			return nil, fmt.Errorf("score %q against %q: %w", p.EntityID, referenceID, err)
		}
		scored = append(scored, model.EntityScore{EntityID: p.EntityID, Score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].EntityID < scored[j].EntityID
	})

	if len(scored) > n {
		scored = scored[:n]
	}
	return scored, nil
}

// Delete removes the entity and its vector together.
func (s *MemStore) Delete(ctx context.Context, entityID string) error {
	s.mu.Lock()
	_, ok := s.profiles[entityID]
	if ok {
		delete(s.profiles, entityID)
	}
	total := len(s.profiles)
	s.mu.Unlock()

	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return fmt.Errorf("delete %q: %w", entityID, ErrNotFound)
	}
	metrics.UpdateStoreRecordsTotal(total)
	return nil
}

// Count returns the number of entities with a stored vector.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// Close releases store resources. MemStore holds none.
func (s *MemStore) Close() error {
	return nil
}

// Package matching ranks a population of candidates against a reference
// entity and returns the top-N most similar ones.
//
// Two interchangeable execution strategies exist. InMemory pulls all
// candidate vectors in one bulk read and scores them in-process. PushDown
// asks the store to compute the identical formula set-at-a-time, so raw
// vectors never cross into this process. Both produce the same ordered
// (entity, score) sequence for the same population.
package matching

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/okian/kindred/internal/domain/model"
	"github.com/okian/kindred/internal/domain/scoring"
	"github.com/okian/kindred/internal/domain/vector"
	"github.com/okian/kindred/pkg/metrics"
)

// Strategy selects how the ranking is executed.
type Strategy string

// Named execution strategies.
const (
	// InMemory bulk-fetches all vectors and scores them in-process.
	InMemory Strategy = "in_memory"
	// PushDown delegates scoring to the storage layer.
	PushDown Strategy = "push_down"
)

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	return s == InMemory || s == PushDown
}

// Store is the storage collaborator the matcher reads from. Both bulk
// calls must serve a consistent snapshot; see the repository package for
// the concrete contracts.
type Store interface {
	// Vector returns the vector owned by entityID.
	Vector(ctx context.Context, entityID string) (vector.Vector, error)

	// AllVectors returns every stored profile in one bulk read.
	AllVectors(ctx context.Context) ([]model.Profile, error)

	// RankedScores computes all candidate scores inside the store,
	// ordered score descending then entity id ascending, truncated to n.
	RankedScores(ctx context.Context, referenceID string, n int) ([]model.EntityScore, error)
}

// Matcher computes top-N matches over a Store.
type Matcher struct {
	store    Store
	scorer   *scoring.Scorer
	strategy Strategy
}

// New creates a Matcher with configuration options. Defaults: weighted
// scoring, InMemory strategy.
func New(store Store, opts ...Option) *Matcher {
	m := &Matcher{
		store:    store,
		scorer:   scoring.New(),
		strategy: InMemory,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// TopMatches returns up to n candidates most similar to referenceID using
// the matcher's configured strategy.
func (m *Matcher) TopMatches(ctx context.Context, referenceID string, n int) ([]model.EntityScore, error) {
	return m.TopMatchesWith(ctx, referenceID, n, m.strategy)
}

// TopMatchesWith is TopMatches with an explicit strategy.
//
// The result excludes the reference entity, holds min(n, population-1)
// entries, and is ordered score descending with entity id ascending as the
// deterministic tie-break. An empty candidate population yields an empty
// result, not an error. n < 1 fails with ErrInvalidLimit; a reference
// without a stored vector fails with the store's not-found error.
func (m *Matcher) TopMatchesWith(ctx context.Context, referenceID string, n int, strategy Strategy) ([]model.EntityScore, error) {
	start := time.Now()
	if !strategy.Valid() {
		metrics.RecordMatchingError()
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	if n < 1 {
		metrics.RecordMatchingError()
		return nil, fmt.Errorf("limit %d: %w", n, ErrInvalidLimit)
	}

	var (
		matches []model.EntityScore
		err     error
	)
	switch strategy {
	case PushDown:
		matches, err = m.pushDown(ctx, referenceID, n)
	default:
		matches, err = m.inMemory(ctx, referenceID, n)
	}
	if err != nil {
		metrics.RecordMatchingError()
		return nil, err
	}

	metrics.RecordMatchRequest(string(strategy))
	metrics.RecordMatchLatency(string(strategy), float64(time.Since(start).Nanoseconds())/1e6)
	return matches, nil
}

// inMemory fetches the reference vector once, bulk-fetches all candidates
// in a single read (never one fetch per candidate), scores and sorts.
func (m *Matcher) inMemory(ctx context.Context, referenceID string, n int) ([]model.EntityScore, error) {
	ref, err := m.store.Vector(ctx, referenceID)
	if err != nil {
		return nil, fmt.Errorf("reference %q: %w", referenceID, err)
	}

	profiles, err := m.store.AllVectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("candidates for %q: %w", referenceID, err)
	}

	scored := make([]model.EntityScore, 0, len(profiles))
	for _, p := range profiles {
		if p.EntityID == referenceID {
			continue
		}
		score, err := m.scorer.Score(ref, p.Vector)
		if err != nil {
			metrics.RecordScoringError()
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

// pushDown issues one ranked bulk request; the store guarantees order, so
// only truncation remains here.
func (m *Matcher) pushDown(ctx context.Context, referenceID string, n int) ([]model.EntityScore, error) {
	scored, err := m.store.RankedScores(ctx, referenceID, n)
	if err != nil {
		return nil, fmt.Errorf("ranked candidates for %q: %w", referenceID, err)
	}
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored, nil
}

// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"

	repository "github.com/okian/kindred/internal/adapters/repository"
	"github.com/okian/kindred/internal/config"
	"github.com/okian/kindred/internal/domain/matching"
	"github.com/okian/kindred/internal/domain/model"
	"github.com/okian/kindred/internal/domain/scoring"
	"github.com/okian/kindred/internal/domain/types"
	"github.com/okian/kindred/internal/domain/vector"
	"github.com/okian/kindred/internal/seed"
	"github.com/okian/kindred/pkg/logger"
	"github.com/okian/kindred/pkg/metrics"
)

// Service implements the API dependencies for the matching system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store   repository.Store
	matcher *matching.Matcher

	// Configuration
	storeKind     string
	sqlitePath    string
	variant       scoring.Variant
	strategy      matching.Strategy
	maxMatchLimit int
	seedCount     int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStoreKind selects the vector store backend.
func WithStoreKind(kind string) Option {
	return func(s *Service) {
		if kind != "" {
			s.storeKind = kind
		}
	}
}

// WithSQLitePath sets the database file for the sqlite store.
func WithSQLitePath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.sqlitePath = path
		}
	}
}

// WithScoringVariant sets the similarity formula used for matching.
func WithScoringVariant(v scoring.Variant) Option {
	return func(s *Service) {
		if v.Valid() {
			s.variant = v
		}
	}
}

// WithMatchStrategy sets the default ranking execution strategy.
func WithMatchStrategy(st matching.Strategy) Option {
	return func(s *Service) {
		if st.Valid() {
			s.strategy = st
		}
	}
}

// WithMaxMatchLimit caps the per-request match limit.
func WithMaxMatchLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxMatchLimit = limit
		}
	}
}

// WithSeedCount loads that many generated demo profiles at startup.
func WithSeedCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.seedCount = count
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		storeKind:     config.StoreMemory,
		sqlitePath:    "kindred.db",
		variant:       scoring.Weighted,
		strategy:      matching.InMemory,
		maxMatchLimit: 100,
		logger:        nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting matching service...")

	// Initialize the vector store
	switch s.storeKind {
	case config.StoreSQLite:
		store, err := repository.NewSQLStore(ctx, s.sqlitePath,
			repository.WithVariant(s.variant),
		)
		if err != nil {
			return fmt.Errorf("opening sqlite store: %w", err)
		}
		s.store = store
		s.logger.Info(ctx, "using sqlite store", logger.String("path", s.sqlitePath))
	case config.StoreMemory:
		s.store = repository.NewMemStore(ctx,
			repository.WithVariant(s.variant),
		)
		s.logger.Info(ctx, "using in-memory store")
	default:
		return fmt.Errorf("%w: unknown store %q", config.ErrInvalidConfig, s.storeKind)
	}

	s.matcher = matching.New(s.store,
		matching.WithScorer(scoring.New(scoring.WithVariant(s.variant))),
		matching.WithStrategy(s.strategy),
	)

	if s.seedCount > 0 {
		n, err := seed.Load(ctx, s.store, s.seedCount)
		if err != nil {
			return fmt.Errorf("seeding demo profiles: %w", err)
		}
		s.logger.Info(ctx, "seeded demo profiles", logger.Int("count", n))
	}

	s.started = true
	s.logger.Info(ctx, "matching service started",
		logger.String("store", s.storeKind),
		logger.String("variant", string(s.variant)),
		logger.String("strategy", string(s.strategy)),
		logger.Int("maxMatchLimit", s.maxMatchLimit),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping matching service...")

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn(context.Background(), "closing store", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(context.Background(), "matching service stopped")
}

// UpsertVector validates and stores a preference vector for an entity.
func (s *Service) UpsertVector(ctx context.Context, entityID string, components []float64) error {
	v, err := vector.New(components...)
	if err != nil {
		metrics.RecordErrorByComponent("service", "invalid_vector")
		return err
	}
	return s.store.PutVector(ctx, entityID, v)
}

// Vector returns the stored profile for an entity.
func (s *Service) Vector(ctx context.Context, entityID string) (model.Profile, error) {
	v, err := s.store.Vector(ctx, entityID)
	if err != nil {
		return model.Profile{}, err
	}
	return model.Profile{EntityID: entityID, Vector: v}, nil
}

// Delete removes an entity and its vector.
func (s *Service) Delete(ctx context.Context, entityID string) error {
	return s.store.Delete(ctx, entityID)
}

// TopMatches ranks the population against the reference entity. An empty
// strategy uses the configured default; limits above the configured cap
// are clamped rather than rejected.
func (s *Service) TopMatches(ctx context.Context, entityID string, n int, strategy string) ([]types.Match, error) {
	if n > s.maxMatchLimit {
		n = s.maxMatchLimit
	}

	st := s.strategy
	if strategy != "" {
		parsed, err := matching.ParseStrategy(strategy)
		if err != nil {
			return nil, err
		}
		st = parsed
	}

	scored, err := s.matcher.TopMatchesWith(ctx, entityID, n, st)
	if err != nil {
		return nil, err
	}

	// Convert to API format
	matches := make([]types.Match, len(scored))
	for i, es := range scored {
		matches[i] = types.Match{
			Rank:     i + 1,
			EntityID: es.EntityID,
			Score:    es.Score,
		}
	}

	return matches, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":       s.started,
		"store":         s.storeKind,
		"variant":       string(s.variant),
		"strategy":      string(s.strategy),
		"maxMatchLimit": s.maxMatchLimit,
	}

	if s.started {
		total := s.store.Count(ctx)
		stats["totalEntities"] = total

		// Update metrics
		metrics.UpdateTotalEntities(total)
	}

	return stats
}

// Count returns the current population size.
func (s *Service) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return 0
	}
	return s.store.Count(ctx)
}

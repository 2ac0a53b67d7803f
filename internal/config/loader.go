package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/kindred/internal/domain/matching"
	"github.com/okian/kindred/internal/domain/scoring"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if KINDRED_CONFIG is set
//  3. env (prefix KINDRED_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("KINDRED_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: KINDRED_ADDR, KINDRED_STORE, ...
	// Map env keys like KINDRED_MAX_MATCH_LIMIT -> max_match_limit (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("KINDRED_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "kindred_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the service cannot start with.
func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.Store != StoreMemory && c.Store != StoreSQLite {
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	}
	if c.Store == StoreSQLite && c.SQLitePath == "" {
		return fmt.Errorf("%w: sqlite_path must not be empty", ErrInvalidConfig)
	}
	if _, err := scoring.ParseVariant(c.ScoringVariant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := matching.ParseStrategy(c.MatchStrategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxMatchLimit < 1 {
		return fmt.Errorf("%w: max_match_limit must be positive", ErrInvalidConfig)
	}
	if c.SeedCount < 0 {
		return fmt.Errorf("%w: seed_count must not be negative", ErrInvalidConfig)
	}
	return nil
}

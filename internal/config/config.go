// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Store kinds accepted by the service.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Store selects the vector store backend: memory or sqlite.
	Store string `koanf:"store"`

	// SQLitePath is the database file for the sqlite store.
	// ":memory:" keeps it ephemeral.
	SQLitePath string `koanf:"sqlite_path"`

	// ScoringVariant selects the similarity formula: naive or weighted.
	ScoringVariant string `koanf:"scoring_variant"`

	// MatchStrategy selects the default ranking execution:
	// in_memory or push_down.
	MatchStrategy string `koanf:"match_strategy"`

	// MaxMatchLimit caps GET /matches/{id}?limit.
	MaxMatchLimit int `koanf:"max_match_limit"`

	// SeedCount, when positive, loads that many generated demo profiles
	// at startup.
	SeedCount int `koanf:"seed_count"`
}

// New creates a Config populated with defaults.
func New() *Config {
	c := &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		Store:          StoreMemory,
		SQLitePath:     "kindred.db",
		ScoringVariant: "weighted",
		MatchStrategy:  "in_memory",
		MaxMatchLimit:  100,
		SeedCount:      0,
	}
	return c
}

// Package repository defines the vector store interface and errors.
package repository

import "github.com/okian/kindred/internal/domain/scoring"

// settings holds configuration shared by store implementations.
type settings struct {
	variant scoring.Variant
}

// Option applies a configuration option to a store.
type Option func(*settings)

// WithVariant selects the scoring variant the store computes RankedScores
// with. It must match the variant of the in-process scorer for the two
// ranking strategies to agree. Defaults to scoring.Weighted.
func WithVariant(v scoring.Variant) Option {
	return func(s *settings) {
		if v.Valid() {
			s.variant = v
		}
	}
}

func newSettings(opts ...Option) settings {
	s := settings{variant: scoring.Weighted}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

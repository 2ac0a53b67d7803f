package matching

import "github.com/okian/kindred/internal/domain/scoring"

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithScorer sets the pairwise scorer used by the InMemory strategy. It
// must be configured with the same variant as the store for the two
// strategies to agree.
func WithScorer(s *scoring.Scorer) Option {
	return func(m *Matcher) {
		if s != nil {
			m.scorer = s
		}
	}
}

// WithStrategy sets the default execution strategy.
func WithStrategy(s Strategy) Option {
	return func(m *Matcher) {
		if s.Valid() {
			m.strategy = s
		}
	}
}

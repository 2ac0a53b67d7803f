package scoring

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithVariant selects the scoring variant. Unknown variants are ignored
// and the default stands.
func WithVariant(v Variant) Option {
	return func(s *Scorer) {
		if v.Valid() {
			s.variant = v
		}
	}
}

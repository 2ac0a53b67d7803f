// Package scoring computes pairwise similarity scores between preference
// vectors.
//
// A score expresses percentage similarity, nominally 0-100. Two variants
// exist: Naive sums raw component distances; Weighted applies tiered
// weighting so small disagreements count half and large ones half again as
// much. Both normalize by the unweighted maximum distance
// (vector.MaxTotalDistance). The weighted total is not bounded by that
// normalizer, so weighted scores can leave [0, 100] for extreme inputs;
// this is deliberate, documented behavior.
package scoring

import (
	"fmt"
	"math"

	"github.com/okian/kindred/internal/domain/vector"
)

// Variant selects the scoring formula.
type Variant string

// Named scoring variants.
const (
	// Naive sums unweighted component distances.
	Naive Variant = "naive"
	// Weighted applies tiered distance weighting before summation.
	Weighted Variant = "weighted"
)

// Tier policy constants. The storage layer mirrors these exactly; change
// them here and there together.
const (
	// TierThreshold splits small distances from large ones.
	TierThreshold = 2.0
	// SmallWeight multiplies distances at or below TierThreshold.
	SmallWeight = 0.5
	// LargeWeight multiplies distances above TierThreshold.
	LargeWeight = 1.5
	// ScorePrecision is the number of decimal places a score is rounded to.
	ScorePrecision = 1

	maxScoreValue = 100.0
)

// Valid reports whether v names a known variant.
func (v Variant) Valid() bool {
	return v == Naive || v == Weighted
}

// Scorer computes similarity scores under a fixed variant. The zero value
// is not usable; construct with New. Scorer is stateless and safe for
// concurrent use.
type Scorer struct {
	variant Variant
}

// New creates a Scorer with configuration options. The default variant is
// Weighted.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		variant: Weighted,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Variant returns the variant the scorer was built with.
func (s *Scorer) Variant() Variant {
	return s.variant
}

// Score returns the similarity between a and b as a percentage rounded to
// ScorePrecision decimal places. Scoring is pure: no side effects, no
// shared state.
//
// Vectors of mismatched dimensionality are a programming error and fail
// fast with ErrDimensionMismatch rather than producing a partial result.
func (s *Scorer) Score(a, b vector.Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d components", ErrDimensionMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: empty vectors", ErrDimensionMismatch)
	}

	var total float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if s.variant == Weighted {
			if d <= TierThreshold {
				d *= SmallWeight
			} else {
				d *= LargeWeight
			}
		}
		total += d
	}

	// Normalizer stays the unweighted maximum even for the weighted
	// variant; the weighted total may exceed it or undershoot it.
	maxDistance := float64(len(a)) * vector.MaxComponent
	score := (1 - total/maxDistance) * maxScoreValue

	return roundScore(score), nil
}

// roundScore rounds to ScorePrecision decimal places, half away from zero.
// SQLite's ROUND() behaves the same way, which keeps the pushdown path
// bit-compatible.
func roundScore(x float64) float64 {
	scale := math.Pow10(ScorePrecision)
	return math.Round(x*scale) / scale
}

// Package vector defines the preference vector type and its validation rules.
package vector

import (
	"fmt"
	"math"
)

// Canonical vector geometry. The scoring formula generalizes to any
// dimension, but every vector in one population must share the same one.
const (
	// Dimension is the number of components in a preference vector.
	Dimension = 5

	// MaxComponent is the inclusive upper bound for a single component.
	MaxComponent = 5.0

	// MinComponent is the inclusive lower bound for a single component.
	MinComponent = 0.0

	// Precision is the number of decimal places a component carries.
	Precision = 1
)

// MaxTotalDistance is the largest possible unweighted distance between two
// in-range vectors: Dimension * MaxComponent.
const MaxTotalDistance = Dimension * MaxComponent

// Vector is an ordered tuple of preference components. Order is fixed and
// identical across all vectors; components are positional in computation.
type Vector []float64

// New builds a validated Vector from the given components.
// It returns ErrDimension when the count is not Dimension and ErrOutOfRange
// when any component falls outside [MinComponent, MaxComponent].
func New(components ...float64) (Vector, error) {
	v := Vector(components)
	if err := v.Validate(); err != nil {
		return nil, err
	}
	out := make(Vector, len(components))
	copy(out, components)
	return out, nil
}

// Validate checks dimension and per-component range. Scoring does not crash
// on invalid vectors, but its output is undefined for them, so callers are
// expected to validate at the boundary.
func (v Vector) Validate() error {
	if len(v) != Dimension {
		return fmt.Errorf("%w: got %d components, want %d", ErrDimension, len(v), Dimension)
	}
	for i, c := range v {
		if math.IsNaN(c) || c < MinComponent || c > MaxComponent {
			return fmt.Errorf("%w: component %d is %v, want [%v, %v]", ErrOutOfRange, i+1, c, MinComponent, MaxComponent)
		}
	}
	return nil
}

// Round returns a copy with every component rounded to Precision decimal
// places. Half-way values round away from zero, matching the storage layer.
func (v Vector) Round() Vector {
	scale := math.Pow10(Precision)
	out := make(Vector, len(v))
	for i, c := range v {
		out[i] = math.Round(c*scale) / scale
	}
	return out
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

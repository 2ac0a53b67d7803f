package scoring

import (
	"errors"
	"fmt"
)

// Sentinel kinds for scoring errors.
var (
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrUnknownVariant    = errors.New("unknown scoring variant")
)

// ParseVariant validates a variant name from configuration or a request.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
	return v, nil
}

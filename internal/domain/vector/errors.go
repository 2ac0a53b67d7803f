package vector

import "errors"

// Sentinel kinds for vector validation errors.
var (
	ErrDimension  = errors.New("invalid vector dimension")
	ErrOutOfRange = errors.New("component out of range")
)

package matching

import (
	"errors"
	"fmt"
)

// Sentinel kinds for matching errors.
var (
	ErrInvalidLimit    = errors.New("invalid match limit")
	ErrUnknownStrategy = errors.New("unknown match strategy")
)

// ParseStrategy validates a strategy name from configuration or a request.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	return st, nil
}

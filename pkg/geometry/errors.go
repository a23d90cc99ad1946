package geometry

import "errors"

// Vector validation errors
var (
	ErrNotFinite = errors.New("vector components must be finite")
)

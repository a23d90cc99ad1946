package track

import "errors"

// Detection validation errors
var (
	ErrNegativeTimestamp = errors.New("detection timestamp must be non-negative")
)

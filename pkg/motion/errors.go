package motion

import "errors"

// Motion-specific errors
var (
	ErrNegativeThreshold = errors.New("threshold components must be non-negative")
	ErrMarginTooWide     = errors.New("edge margin components must not exceed 0.5")
	ErrInvalidConfig     = errors.New("invalid motion configuration")
)

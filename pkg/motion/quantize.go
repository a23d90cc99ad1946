package motion

import (
	"fmt"

	"github.com/framewise/motionsig/pkg/geometry"
)

// NormalizeVelocity collapses a velocity into a per-axis direction signal.
// Each component of the result is -1, 0 or 1: 1 when the component exceeds
// the matching threshold component, -1 when it is below the negated
// threshold, 0 otherwise. Comparisons are strict, so a component exactly
// equal to the threshold reads as not moving. Both vectors must be finite and
// the threshold non-negative in both axes; pass geometry.Zero for no
// filtering.
func NormalizeVelocity(v, threshold geometry.Vec2) (geometry.Vec2, error) {
	if err := validateArgs(v, threshold); err != nil {
		return geometry.Zero, err
	}
	return geometry.New(
		quantize(v.X, threshold.X),
		quantize(v.Y, threshold.Y),
	), nil
}

// NormalizePosition flags proximity to the frame edges for a position in
// normalized [0, 1] frame coordinates. Per axis the result is 1 when the
// component is within threshold of the far edge (c > 1-t), -1 when within
// threshold of the near edge (c < t), and 0 in the interior. Validation
// matches NormalizeVelocity.
func NormalizePosition(p, threshold geometry.Vec2) (geometry.Vec2, error) {
	if err := validateArgs(p, threshold); err != nil {
		return geometry.Zero, err
	}
	return geometry.New(
		quantizeEdge(p.X, threshold.X),
		quantizeEdge(p.Y, threshold.Y),
	), nil
}

func quantize(c, t float64) float64 {
	switch {
	case c > t:
		return 1
	case c < -t:
		return -1
	default:
		return 0
	}
}

func quantizeEdge(c, t float64) float64 {
	switch {
	case c > 1-t:
		return 1
	case c < t:
		return -1
	default:
		return 0
	}
}

func validateArgs(v, threshold geometry.Vec2) error {
	if err := geometry.Validate(v); err != nil {
		return err
	}
	if err := geometry.Validate(threshold); err != nil {
		return fmt.Errorf("threshold: %w", err)
	}
	if threshold.X < 0 || threshold.Y < 0 {
		return fmt.Errorf("threshold (%v, %v): %w", threshold.X, threshold.Y, ErrNegativeThreshold)
	}
	return nil
}

// Package motion computes motion signals for tracked detections: a raw
// velocity between two consecutive observations, and quantizers that collapse
// continuous vectors into per-axis direction signals in {-1, 0, 1}.
package motion

import (
	"github.com/framewise/motionsig/pkg/geometry"
	"github.com/framewise/motionsig/pkg/track"
)

// Velocity returns the per-axis velocity between two detections of the same
// object, in position-units per millisecond. Callers pass a chronologically
// before b; ordering is not enforced, and swapping the arguments negates the
// result. Equal timestamps yield the zero vector instead of a division by
// zero, which is indistinguishable from a genuinely stationary object.
func Velocity(a, b track.Detection) geometry.Vec2 {
	dt := b.Timestamp - a.Timestamp
	if dt == 0 {
		return geometry.Zero
	}
	return b.Position.Sub(a.Position).Scale(1 / float64(dt))
}

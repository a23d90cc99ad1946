// Package track holds the observation types a tracking pipeline feeds into
// the motion operations.
package track

import (
	"fmt"

	"github.com/framewise/motionsig/pkg/geometry"
)

// Detection is a single observation of a tracked object: a bounding box in
// normalized frame coordinates at a millisecond timestamp. Timestamps are
// monotonic non-negative per track; consecutive detections for the same
// ObjectID are what the motion operations consume.
type Detection struct {
	ObjectID   uint64        `json:"object_id" yaml:"object_id"`
	Position   geometry.Vec2 `json:"position" yaml:"position"`
	Dimensions geometry.Vec2 `json:"dimensions" yaml:"dimensions"`
	Timestamp  int64         `json:"timestamp" yaml:"timestamp"`
}

// NewDetection validates an observation before constructing it. Position and
// dimensions must be finite and the timestamp non-negative.
func NewDetection(objectID uint64, position, dimensions geometry.Vec2, timestamp int64) (Detection, error) {
	if err := geometry.Validate(position); err != nil {
		return Detection{}, fmt.Errorf("position: %w", err)
	}
	if err := geometry.Validate(dimensions); err != nil {
		return Detection{}, fmt.Errorf("dimensions: %w", err)
	}
	if timestamp < 0 {
		return Detection{}, fmt.Errorf("timestamp %d: %w", timestamp, ErrNegativeTimestamp)
	}
	return Detection{
		ObjectID:   objectID,
		Position:   position,
		Dimensions: dimensions,
		Timestamp:  timestamp,
	}, nil
}

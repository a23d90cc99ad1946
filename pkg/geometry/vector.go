package geometry

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector with float64 components. The zero value is the zero
// vector. Operations never mutate their receiver; every result is a new value.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Zero is the zero vector. It doubles as the default quantization threshold.
var Zero = Vec2{}

// New constructs a Vec2 from its components.
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the vector pointing the opposite way.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Validate returns an error wrapping ErrNotFinite when either component of v
// is NaN or infinite.
func Validate(v Vec2) error {
	if !v.IsFinite() {
		return fmt.Errorf("vector (%v, %v): %w", v.X, v.Y, ErrNotFinite)
	}
	return nil
}

// Compare orders two vectors by length: -1 when a is longer than b, 1 when b
// is longer than a, 0 when their lengths are equal.
func Compare(a, b Vec2) int {
	return CompareLen(a, b.Len())
}

// CompareLen compares the length of a against the scalar length l, with the
// same orientation as Compare.
func CompareLen(a Vec2, l float64) int {
	switch al := a.Len(); {
	case al > l:
		return -1
	case al < l:
		return 1
	default:
		return 0
	}
}

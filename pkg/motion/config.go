package motion

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/framewise/motionsig/pkg/geometry"
)

// Config carries the quantization thresholds a tracking pipeline tunes per
// deployment. Zero thresholds mean any movement signals a direction and only
// positions outside [0, 1] signal an edge.
type Config struct {
	// VelocityThreshold is the per-axis speed, in position-units per
	// millisecond, below which motion reads as noise.
	VelocityThreshold geometry.Vec2 `json:"velocity_threshold" yaml:"velocity_threshold"`
	// EdgeMargin is the per-axis margin, in normalized frame units, within
	// which a position reads as touching the frame edge.
	EdgeMargin geometry.Vec2 `json:"edge_margin" yaml:"edge_margin"`
}

// DefaultConfig returns a config with zero thresholds in both axes.
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the thresholds. Components must be finite and non-negative;
// edge margin components must not exceed 0.5 so the near and far bands of an
// axis cannot overlap.
func (c Config) Validate() error {
	if err := validateThreshold("velocity_threshold", c.VelocityThreshold); err != nil {
		return err
	}
	if err := validateThreshold("edge_margin", c.EdgeMargin); err != nil {
		return err
	}
	if c.EdgeMargin.X > 0.5 || c.EdgeMargin.Y > 0.5 {
		return fmt.Errorf("%w: edge_margin (%v, %v): %s",
			ErrInvalidConfig, c.EdgeMargin.X, c.EdgeMargin.Y, ErrMarginTooWide)
	}
	return nil
}

func validateThreshold(name string, v geometry.Vec2) error {
	if err := geometry.Validate(v); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, name, err)
	}
	if v.X < 0 || v.Y < 0 {
		return fmt.Errorf("%w: %s (%v, %v): %s", ErrInvalidConfig, name, v.X, v.Y, ErrNegativeThreshold)
	}
	return nil
}

// LoadYAML decodes a Config from YAML and validates it.
func LoadYAML(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode yaml config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadJSON decodes a Config from JSON and validates it.
func LoadJSON(r io.Reader) (Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode json config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

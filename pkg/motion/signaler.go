package motion

import (
	"github.com/google/uuid"

	"github.com/framewise/motionsig/pkg/geometry"
	"github.com/framewise/motionsig/pkg/log"
	"github.com/framewise/motionsig/pkg/track"
)

// Signaler binds the motion operations to a validated set of thresholds.
// It is immutable after construction and safe for concurrent use.
type Signaler struct {
	cfg Config
	log log.Log
	id  string
}

// New builds a Signaler from a config. A nil logger silences the instance.
func New(cfg Config, logger log.Log) (*Signaler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Nop()
	}
	id := uuid.NewString()
	return &Signaler{
		cfg: cfg,
		log: logger.With(log.String("signaler", id)),
		id:  id,
	}, nil
}

// ID returns the instance id carried in this Signaler's log fields.
func (s *Signaler) ID() string {
	return s.id
}

// Config returns the thresholds this Signaler was built with.
func (s *Signaler) Config() Config {
	return s.cfg
}

// VelocitySignal quantizes the velocity between two consecutive detections of
// the same tracked object, using the configured velocity threshold.
func (s *Signaler) VelocitySignal(a, b track.Detection) (geometry.Vec2, error) {
	v := Velocity(a, b)
	sig, err := NormalizeVelocity(v, s.cfg.VelocityThreshold)
	if err != nil {
		s.log.Error("velocity signal rejected", log.Uint64("object_id", b.ObjectID), log.Err(err))
		return geometry.Zero, err
	}
	s.log.Debug("velocity signal",
		log.Uint64("object_id", b.ObjectID),
		log.Float64("vx", v.X),
		log.Float64("vy", v.Y),
		log.Float64("sx", sig.X),
		log.Float64("sy", sig.Y),
	)
	return sig, nil
}

// EdgeSignal flags whether a detection sits inside the configured edge margin
// of the frame.
func (s *Signaler) EdgeSignal(d track.Detection) (geometry.Vec2, error) {
	sig, err := NormalizePosition(d.Position, s.cfg.EdgeMargin)
	if err != nil {
		s.log.Error("edge signal rejected", log.Uint64("object_id", d.ObjectID), log.Err(err))
		return geometry.Zero, err
	}
	s.log.Debug("edge signal",
		log.Uint64("object_id", d.ObjectID),
		log.Float64("px", d.Position.X),
		log.Float64("py", d.Position.Y),
		log.Float64("sx", sig.X),
		log.Float64("sy", sig.Y),
	)
	return sig, nil
}

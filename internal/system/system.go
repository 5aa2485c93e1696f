// Package system assembles the immutable simulation context from parsed
// inputs and exposes the topology sampling entry point.
package system

import (
	"go.uber.org/zap"

	"github.com/san-kum/fieldtopo/internal/field"
	"github.com/san-kum/fieldtopo/internal/geom"
	"github.com/san-kum/fieldtopo/internal/topo"
	"github.com/san-kum/fieldtopo/internal/volume"
)

// Options carries the resolved configuration a System is built from. The
// basis third column is derived from V1 and V2, never supplied.
type Options struct {
	Center  geom.Vec3
	V1, V2  geom.Vec3
	Region  volume.Volume
	Samples int
}

func DefaultOptions() Options {
	return Options{
		V1: geom.Vec3{X: 1},
		V2: geom.Vec3{Y: 1},
	}
}

// System owns the charge set, the user frame and the sampling region.
// Immutable once built; every sampling call is a pure function of this state
// plus random draws.
type System struct {
	evaluator *field.Evaluator
	center    geom.Vec3
	basis     *geom.Basis
	region    volume.Volume
	samples   int
	log       *zap.Logger
}

// New validates the inputs, shifts every charge to the requested center and
// rotates it into the user basis. A missing region or empty charge set is a
// fatal configuration error.
func New(charges []field.PointCharge, opts Options, log *zap.Logger) (*System, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Region == nil {
		return nil, ErrNoRegion
	}
	if len(charges) == 0 {
		return nil, ErrNoCharges
	}
	if opts.Samples < 0 {
		return nil, ErrNegativeSamples
	}

	basis, err := geom.NewBasis(opts.V1, opts.V2)
	if err != nil {
		return nil, err
	}

	local := make([]field.PointCharge, len(charges))
	for i, c := range charges {
		local[i] = field.PointCharge{
			Coordinate: basis.ToLocal(c.Coordinate.Sub(opts.Center)),
			Charge:     c.Charge,
		}
	}

	log.Info("simulation context ready",
		zap.Int("charges", len(local)),
		zap.Any("center", opts.Center),
		zap.Any("v3", basis.V3()),
		zap.String("region", opts.Region.Description()),
		zap.Int("samples", opts.Samples),
	)

	return &System{
		evaluator: field.NewEvaluator(local),
		center:    opts.Center,
		basis:     basis,
		region:    opts.Region,
		samples:   opts.Samples,
		log:       log,
	}, nil
}

func (s *System) Samples() int          { return s.samples }
func (s *System) Region() volume.Volume { return s.region }

func (s *System) Field(p geom.Vec3) geom.Vec3 { return s.evaluator.At(p) }

// Sampler builds the engine for this system with the given tunables. The
// engine is cheap to construct and not reused across calls.
func (s *System) Sampler(stepLength float64, bound topo.StepBound, workers int, seed int64) *topo.Engine {
	tracer := topo.NewTracer(s.evaluator, s.region, stepLength, bound)
	return topo.NewEngine(tracer, workers, seed, s.log)
}

// Topology draws the configured number of independent path samples.
func (s *System) Topology(stepLength float64, bound topo.StepBound, workers int, seed int64) []topo.PathSample {
	return s.Sampler(stepLength, bound, workers, seed).Run(s.samples)
}

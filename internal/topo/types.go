package topo

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/fieldtopo/internal/geom"
)

// Field is any static vector field the tracer can follow. The implementation
// must be safe for unsynchronized concurrent reads.
type Field interface {
	At(p geom.Vec3) geom.Vec3
}

// PathSample is the result of one traced path: the net displacement between
// its endpoints and the averaged endpoint curvature. Pure value, no identity
// beyond the two fields.
type PathSample struct {
	Distance  float64
	Curvature float64
}

func (s PathSample) String() string {
	return fmt.Sprintf("%g,%g", s.Distance, s.Curvature)
}

// StepBound yields the per-trial maximum step count. The distribution is a
// tunable supplied by configuration, drawn from the caller's own generator so
// workers never contend on it.
type StepBound interface {
	Draw(rng *rand.Rand) int
}

// FixedBound always yields the same step limit.
type FixedBound int

func (b FixedBound) Draw(*rand.Rand) int { return int(b) }

// UniformBound yields a limit uniform over [Min, Max].
type UniformBound struct {
	Min, Max int
}

func (b UniformBound) Draw(rng *rand.Rand) int {
	return b.Min + rng.Intn(b.Max-b.Min+1)
}

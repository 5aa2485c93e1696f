package topo

import (
	"math/rand"
	"sync"

	"github.com/san-kum/fieldtopo/internal/geom"
	"github.com/san-kum/fieldtopo/internal/volume"
)

// Tracer draws independent field-line paths through a volume. All shared data
// it reads is immutable except the volume's generator state, which it guards
// with its own mutex so a single Tracer can serve many workers.
type Tracer struct {
	field      Field
	vol        volume.Volume
	stepLength float64
	bound      StepBound

	volMu sync.Mutex // serializes vol.RandomPoint
}

func NewTracer(f Field, vol volume.Volume, stepLength float64, bound StepBound) *Tracer {
	return &Tracer{field: f, vol: vol, stepLength: stepLength, bound: bound}
}

// Sample runs one trial using the caller-owned generator for everything
// except the start-point draw.
func (t *Tracer) Sample(rng *rand.Rand) PathSample {
	maxSteps := t.bound.Draw(rng)

	t.volMu.Lock()
	initial := t.vol.RandomPoint()
	t.volMu.Unlock()

	pos := initial
	for steps := 0; t.vol.Contains(pos) && steps < maxSteps; steps++ {
		pos = t.advance(pos)
	}

	return PathSample{
		Distance:  pos.Sub(initial).Norm(),
		Curvature: (t.curvature(pos) + t.curvature(initial)) / 2.0,
	}
}

// advance takes one fixed-length step along the local field direction.
// A vanishing field divides by zero and the non-finite point propagates.
func (t *Tracer) advance(p geom.Vec3) geom.Vec3 {
	f := t.field.At(p)
	return p.Add(f.Scale(t.stepLength / f.Norm()))
}

// curvature estimates |a' x a''| / |a'|^3 at p by one finite-difference step
// along the path, converting arc length to the field-line parameter via
// dt = |next - p| / |tangent|.
func (t *Tracer) curvature(p geom.Vec3) float64 {
	tangent := t.field.At(p)
	next := t.advance(p)

	dt := next.Sub(p).Norm() / tangent.Norm()
	deriv := t.field.At(next).Sub(tangent).Scale(1.0 / dt)

	n := tangent.Norm()
	return tangent.Cross(deriv).Norm() / (n * n * n)
}

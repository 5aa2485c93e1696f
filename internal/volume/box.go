package volume

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/fieldtopo/internal/geom"
)

// Box is an axis-aligned region with extents (dx, dy, dz) centered at the
// local origin.
type Box struct {
	dx, dy, dz float64
	rng        *rand.Rand
}

// NewBox builds a box with the given positive extents. The generator is
// supplied explicitly so seeded reruns reproduce the same draw sequence.
func NewBox(dx, dy, dz float64, rng *rand.Rand) *Box {
	return &Box{dx: dx, dy: dy, dz: dz, rng: rng}
}

func (b *Box) Contains(p geom.Vec3) bool {
	return p.X >= -b.dx/2 && p.X <= b.dx/2 &&
		p.Y >= -b.dy/2 && p.Y <= b.dy/2 &&
		p.Z >= -b.dz/2 && p.Z <= b.dz/2
}

func (b *Box) RandomPoint() geom.Vec3 {
	return geom.Vec3{
		X: (b.rng.Float64() - 0.5) * b.dx,
		Y: (b.rng.Float64() - 0.5) * b.dy,
		Z: (b.rng.Float64() - 0.5) * b.dz,
	}
}

func (b *Box) Description() string {
	return fmt.Sprintf("box [%g %g %g]", b.dx, b.dy, b.dz)
}

// Diagonal is the longest distance between two points of the box.
func (b *Box) Diagonal() float64 {
	return geom.Vec3{X: b.dx, Y: b.dy, Z: b.dz}.Norm()
}

package field

import (
	"math"

	"github.com/san-kum/fieldtopo/internal/geom"
)

// Vacuum permittivity in the structure-file unit system (elementary charges,
// angstroms, volts).
const Permittivity = 0.0055263495

// CoulombConstant is k = 1/(4*pi*eps).
const CoulombConstant = 1.0 / (4.0 * math.Pi * Permittivity)

// PointCharge is a fixed charge contributing to the total field.
// Immutable once loaded.
type PointCharge struct {
	Coordinate geom.Vec3
	Charge     float64
}

// Evaluator computes the electric field of a fixed charge set by Coulomb
// superposition. It holds no mutable state and is safe for unsynchronized
// concurrent reads.
type Evaluator struct {
	charges []PointCharge
}

func NewEvaluator(charges []PointCharge) *Evaluator {
	return &Evaluator{charges: charges}
}

func (e *Evaluator) NumCharges() int { return len(e.charges) }

// At returns k * sum q_i (p - r_i) / |p - r_i|^3.
//
// A position coinciding with a charge location divides by zero; the resulting
// non-finite vector propagates to the caller unguarded.
func (e *Evaluator) At(p geom.Vec3) geom.Vec3 {
	var sum geom.Vec3
	for _, pc := range e.charges {
		d := p.Sub(pc.Coordinate)
		n := d.Norm()
		sum = sum.Add(d.Scale(pc.Charge / (n * n * n)))
	}
	return sum.Scale(CoulombConstant)
}

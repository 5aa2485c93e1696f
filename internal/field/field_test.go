package field

import (
	"math"
	"testing"

	"github.com/san-kum/fieldtopo/internal/geom"
)

func TestEvaluator_SingleChargeAnalytic(t *testing.T) {
	q := 2.5
	ev := NewEvaluator([]PointCharge{{Charge: q}})

	points := []geom.Vec3{
		{X: 1},
		{Y: -3},
		{X: 1, Y: 2, Z: -2},
		{X: 0.01, Y: 0.01, Z: 0.01},
	}

	for _, p := range points {
		got := ev.At(p)
		r := p.Norm()
		want := p.Scale(CoulombConstant * q / (r * r * r))
		if got.Sub(want).Norm() > 1e-9*want.Norm() {
			t.Errorf("At(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestEvaluator_Superposition(t *testing.T) {
	a := PointCharge{Coordinate: geom.Vec3{X: -1}, Charge: 1}
	b := PointCharge{Coordinate: geom.Vec3{X: 1}, Charge: 1}
	ev := NewEvaluator([]PointCharge{a, b})

	// equal charges cancel along the perpendicular bisector's x component
	got := ev.At(geom.Vec3{Y: 2})
	if math.Abs(got.X) > 1e-12 {
		t.Errorf("x component should cancel on bisector, got %v", got.X)
	}
	if got.Y <= 0 {
		t.Errorf("y component should point away from positive charges, got %v", got.Y)
	}

	evA := NewEvaluator([]PointCharge{a})
	evB := NewEvaluator([]PointCharge{b})
	p := geom.Vec3{X: 0.5, Y: 1.5, Z: -0.5}
	sum := evA.At(p).Add(evB.At(p))
	if ev.At(p).Sub(sum).Norm() > 1e-9 {
		t.Error("field is not the superposition of per-charge fields")
	}
}

func TestEvaluator_SingularAtChargeLocation(t *testing.T) {
	ev := NewEvaluator([]PointCharge{{Coordinate: geom.Vec3{X: 1}, Charge: 1}})

	// evaluating exactly on a charge is unguarded and non-finite
	got := ev.At(geom.Vec3{X: 1})
	if got.IsFinite() {
		t.Errorf("expected non-finite field at charge location, got %v", got)
	}
}

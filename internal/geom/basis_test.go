package geom

import (
	"math"
	"testing"
)

func TestNewBasis_DerivesV3(t *testing.T) {
	b, err := NewBasis(Vec3{X: 1}, Vec3{Y: 1})
	if err != nil {
		t.Fatalf("basis failed: %v", err)
	}
	if b.V3() != (Vec3{Z: 1}) {
		t.Errorf("v3 = %v, want z", b.V3())
	}
}

func TestNewBasis_Singular(t *testing.T) {
	// v2 parallel to v1 gives a zero v3 column
	if _, err := NewBasis(Vec3{X: 1}, Vec3{X: 2}); err == nil {
		t.Error("expected error for degenerate basis")
	}
}

func TestBasis_ToLocal(t *testing.T) {
	// frame rotated 90 degrees about z: v1=y, v2=-x, v3=z
	b, err := NewBasis(Vec3{Y: 1}, Vec3{X: -1})
	if err != nil {
		t.Fatalf("basis failed: %v", err)
	}

	p := b.ToLocal(Vec3{X: 0, Y: 1, Z: 0})
	if math.Abs(p.X-1) > 1e-12 || math.Abs(p.Y) > 1e-12 || math.Abs(p.Z) > 1e-12 {
		t.Errorf("ToLocal(y) = %v, want (1,0,0)", p)
	}
}

func TestBasis_ToLocal_Identity(t *testing.T) {
	b := IdentityBasis()
	p := Vec3{1.5, -2.0, 0.25}
	got := b.ToLocal(p)
	if got.Sub(p).Norm() > 1e-12 {
		t.Errorf("identity transform moved the point: %v -> %v", p, got)
	}
}

func TestBasis_ToLocal_RoundTrip(t *testing.T) {
	// non-orthogonal but invertible frame
	b, err := NewBasis(Vec3{1, 0.5, 0}, Vec3{0, 1, 0.25})
	if err != nil {
		t.Fatalf("basis failed: %v", err)
	}

	// applying the forward matrix to the local coordinates must recover p
	p := Vec3{0.3, -1.2, 2.4}
	l := b.ToLocal(p)
	back := b.V1().Scale(l.X).Add(b.V2().Scale(l.Y)).Add(b.V3().Scale(l.Z))
	if back.Sub(p).Norm() > 1e-10 {
		t.Errorf("round trip failed: %v -> %v", p, back)
	}
}

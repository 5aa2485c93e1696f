package geom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Basis is the user coordinate frame given by columns v1, v2 and the derived
// v3 = v1 x v2. v3 is always recomputed from v1 and v2, never stored stale.
type Basis struct {
	cols [3]Vec3
	inv  *mat.Dense
}

// NewBasis builds the frame from two user-supplied columns. The columns need
// not be orthonormal, but the resulting matrix must be invertible.
func NewBasis(v1, v2 Vec3) (*Basis, error) {
	v3 := v1.Cross(v2)

	m := mat.NewDense(3, 3, []float64{
		v1.X, v2.X, v3.X,
		v1.Y, v2.Y, v3.Y,
		v1.Z, v2.Z, v3.Z,
	})

	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(m); err != nil {
		return nil, fmt.Errorf("singular basis (v1=%v v2=%v): %w", v1, v2, err)
	}

	return &Basis{cols: [3]Vec3{v1, v2, v3}, inv: inv}, nil
}

// IdentityBasis is the default frame when no v1/v2 options are given.
func IdentityBasis() *Basis {
	b, _ := NewBasis(Vec3{X: 1}, Vec3{Y: 1})
	return b
}

func (b *Basis) V1() Vec3 { return b.cols[0] }
func (b *Basis) V2() Vec3 { return b.cols[1] }
func (b *Basis) V3() Vec3 { return b.cols[2] }

// ToLocal expresses p in the basis frame by applying the inverse matrix.
func (b *Basis) ToLocal(p Vec3) Vec3 {
	return Vec3{
		X: b.inv.At(0, 0)*p.X + b.inv.At(0, 1)*p.Y + b.inv.At(0, 2)*p.Z,
		Y: b.inv.At(1, 0)*p.X + b.inv.At(1, 1)*p.Y + b.inv.At(1, 2)*p.Z,
		Z: b.inv.At(2, 0)*p.X + b.inv.At(2, 1)*p.Y + b.inv.At(2, 2)*p.Z,
	}
}

package volume_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldtopo/internal/geom"
	"github.com/san-kum/fieldtopo/internal/volume"
)

var _ = Describe("Box", func() {
	var box *volume.Box

	BeforeEach(func() {
		box = volume.NewBox(4, 6, 8, rand.New(rand.NewSource(42)))
	})

	Describe("Contains", func() {
		It("accepts the origin and interior points", func() {
			Expect(box.Contains(geom.Vec3{})).To(BeTrue())
			Expect(box.Contains(geom.Vec3{X: 1.9, Y: -2.9, Z: 3.9})).To(BeTrue())
		})

		It("accepts points exactly on the faces", func() {
			Expect(box.Contains(geom.Vec3{X: 2})).To(BeTrue())
			Expect(box.Contains(geom.Vec3{Y: -3})).To(BeTrue())
			Expect(box.Contains(geom.Vec3{Z: 4})).To(BeTrue())
		})

		It("rejects a point just outside a single bound", func() {
			Expect(box.Contains(geom.Vec3{X: 2.001})).To(BeFalse())
			Expect(box.Contains(geom.Vec3{X: 1, Y: -3.001, Z: 1})).To(BeFalse())
			Expect(box.Contains(geom.Vec3{Z: -4.001})).To(BeFalse())
		})
	})

	Describe("RandomPoint", func() {
		It("always lands inside the box", func() {
			for i := 0; i < 1000; i++ {
				Expect(box.Contains(box.RandomPoint())).To(BeTrue())
			}
		})

		It("is uniform: mean near zero, per-axis variance near extent^2/12", func() {
			const n = 200000
			var sum, sumSq geom.Vec3
			for i := 0; i < n; i++ {
				p := box.RandomPoint()
				sum = sum.Add(p)
				sumSq = sumSq.Add(geom.Vec3{X: p.X * p.X, Y: p.Y * p.Y, Z: p.Z * p.Z})
			}
			mean := sum.Scale(1.0 / n)
			Expect(mean.X).To(BeNumerically("~", 0, 0.02))
			Expect(mean.Y).To(BeNumerically("~", 0, 0.03))
			Expect(mean.Z).To(BeNumerically("~", 0, 0.04))

			variance := sumSq.Scale(1.0 / n)
			Expect(variance.X).To(BeNumerically("~", 4.0*4.0/12.0, 0.05))
			Expect(variance.Y).To(BeNumerically("~", 6.0*6.0/12.0, 0.1))
			Expect(variance.Z).To(BeNumerically("~", 8.0*8.0/12.0, 0.2))
		})

		It("reproduces the same sequence for the same seed", func() {
			a := volume.NewBox(4, 6, 8, rand.New(rand.NewSource(7)))
			b := volume.NewBox(4, 6, 8, rand.New(rand.NewSource(7)))
			for i := 0; i < 10; i++ {
				Expect(a.RandomPoint()).To(Equal(b.RandomPoint()))
			}
		})
	})

	Describe("Description", func() {
		It("names the shape and extents", func() {
			Expect(box.Description()).To(Equal("box [4 6 8]"))
		})
	})

	It("is usable through the Volume interface", func() {
		var v volume.Volume = box
		Expect(v.Contains(v.RandomPoint())).To(BeTrue())
	})
})

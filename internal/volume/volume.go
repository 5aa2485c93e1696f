// Package volume defines the bounded sampling regions that field-line paths
// are traced inside of.
//
// A [Volume] needs only two capabilities: a containment test and uniform
// random point generation. Callers never depend on a concrete variant, so new
// shapes (sphere, convex hull) slot in by implementing the interface.
//
// # Thread Safety
//
// RandomPoint draws from the generator supplied at construction and is NOT
// safe for concurrent use; callers sharing a Volume across goroutines must
// serialize that one call. Contains is a pure read and needs no locking.
package volume

import "github.com/san-kum/fieldtopo/internal/geom"

type Volume interface {
	Contains(p geom.Vec3) bool

	// RandomPoint returns a point uniformly distributed over the volume.
	RandomPoint() geom.Vec3

	Description() string
}

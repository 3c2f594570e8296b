package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Kind identifies which primitive a Thing describes
type Kind int

const (
	SphereKind Kind = iota
	PlaneKind
)

// String returns the name of the primitive kind
func (k Kind) String() string {
	switch k {
	case SphereKind:
		return "sphere"
	case PlaneKind:
		return "plane"
	default:
		return "unknown"
	}
}

// Thing is a renderable primitive. It is a small value type so that an
// Intersection can carry a copy of it instead of pointing into the scene.
// Only the fields of the active Kind are meaningful.
type Thing struct {
	Kind    Kind
	Surface material.Surface

	// Sphere
	Center  core.Vec3
	Radius2 float64 // radius squared, precomputed

	// Plane
	Normal core.Vec3 // unit normal
	Offset float64   // signed distance term: N·P + Offset = 0 on the plane
}

// Intersection records a ray reaching a primitive
type Intersection struct {
	Thing Thing    // Copy of the primitive that was hit
	Ray   core.Ray // Ray that produced the hit
	Dist  float64  // Ray parameter of the hit point
}

// Point returns the world-space hit point
func (i Intersection) Point() core.Vec3 {
	return i.Ray.At(i.Dist)
}

// Intersect tests the ray against the primitive. The ray direction is
// expected to be unit length. Distances are not range checked here; the
// nearest-hit search discards negative and non-finite ones.
func (t Thing) Intersect(ray core.Ray) (Intersection, bool) {
	var dist float64
	var ok bool
	switch t.Kind {
	case SphereKind:
		dist, ok = intersectSphere(t.Center, t.Radius2, ray)
	case PlaneKind:
		dist, ok = intersectPlane(t.Normal, t.Offset, ray)
	}
	if !ok {
		return Intersection{}, false
	}
	return Intersection{Thing: t, Ray: ray, Dist: dist}, true
}

// NormalAt returns the surface normal at a point on the primitive
func (t Thing) NormalAt(pos core.Vec3) core.Vec3 {
	switch t.Kind {
	case SphereKind:
		return pos.Subtract(t.Center).Normalize()
	default:
		return t.Normal
	}
}

package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewPlane creates an infinite plane N·P + offset = 0
func NewPlane(normal core.Vec3, offset float64, surface material.Surface) Thing {
	return Thing{
		Kind:    PlaneKind,
		Surface: surface,
		Normal:  normal.Normalize(), // Ensure normal is normalized
		Offset:  offset,
	}
}

// intersectPlane returns the distance along the ray to the plane. Rays
// travelling along the normal miss. A ray parallel to the plane divides by
// zero and yields an infinite or NaN distance, which the nearest-hit search
// rejects.
func intersectPlane(normal core.Vec3, offset float64, ray core.Ray) (float64, bool) {
	denom := normal.Dot(ray.Direction)
	if denom > 0 {
		return 0, false
	}
	return (normal.Dot(ray.Origin) + offset) / -denom, true
}

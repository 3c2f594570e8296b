package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface material.Surface) Thing {
	return Thing{
		Kind:    SphereKind,
		Surface: surface,
		Center:  center,
		Radius2: radius * radius,
	}
}

// intersectSphere returns the near intersection distance of a ray with a
// sphere. Spheres whose center lies behind the ray origin are never hit, and
// the far root is not computed, so a ray starting inside the sphere gets the
// near root (which may be negative).
func intersectSphere(center core.Vec3, radius2 float64, ray core.Ray) (float64, bool) {
	eo := center.Subtract(ray.Origin)
	v := eo.Dot(ray.Direction)
	if v < 0 {
		return 0, false
	}

	disc := radius2 - (eo.Dot(eo) - v*v)
	if disc < 0 {
		return 0, false
	}

	return v - math.Sqrt(disc), true
}

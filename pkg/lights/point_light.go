package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is an infinitely small light with no falloff
type PointLight struct {
	Position core.Vec3
	Color    core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color) PointLight {
	return PointLight{Position: position, Color: color}
}

// Illuminate returns the vector from point to the light, its length and the
// unit direction towards the light
func (l PointLight) Illuminate(point core.Vec3) (toLight core.Vec3, distance float64, direction core.Vec3) {
	toLight = l.Position.Subtract(point)
	return toLight, toLight.Length(), toLight.Normalize()
}

package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SurfaceProperties holds the shading coefficients of a surface at a point
type SurfaceProperties struct {
	Diffuse   core.Color // Lambertian color
	Specular  core.Color // Phong highlight color
	Reflect   float64    // Weight of the mirror reflection
	Roughness float64    // Phong exponent (higher is tighter)
}

// Surface selects one of the closed set of surface models.
// The zero value is Shiny.
type Surface int

const (
	Shiny Surface = iota
	Checkerboard
)

// String returns the name of the surface
func (s Surface) String() string {
	switch s {
	case Shiny:
		return "shiny"
	case Checkerboard:
		return "checkerboard"
	default:
		return "unknown"
	}
}

// Properties evaluates the surface at a world-space point
func (s Surface) Properties(pos core.Vec3) SurfaceProperties {
	switch s {
	case Checkerboard:
		return checkerboardProperties(pos)
	default:
		return shinyProperties()
	}
}

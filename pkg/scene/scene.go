package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is built once
// and never modified while rendering, so it can be shared between workers.
type Scene struct {
	Camera geometry.Camera
	Things []geometry.Thing     // Tested in order; earlier things win ties
	Lights []lights.PointLight // Contributions are summed
}

// NewScene creates a scene from its parts
func NewScene(camera geometry.Camera, things []geometry.Thing, pointLights []lights.PointLight) *Scene {
	return &Scene{
		Camera: camera,
		Things: things,
		Lights: pointLights,
	}
}

// Intersect returns the nearest intersection of the ray with the scene.
// Negative, non-finite and farther-than-FarAway distances are ignored.
func (s *Scene) Intersect(ray core.Ray) (geometry.Intersection, bool) {
	closest := core.FarAway
	var closestHit geometry.Intersection
	hitAnything := false

	for _, thing := range s.Things {
		hit, isHit := thing.Intersect(ray)
		if !isHit || !validDistance(hit.Dist) {
			continue
		}
		if hit.Dist < closest {
			closest = hit.Dist
			closestHit = hit
			hitAnything = true
		}
	}

	return closestHit, hitAnything
}

// TestRay returns the distance to the nearest intersection, if any
func (s *Scene) TestRay(ray core.Ray) (float64, bool) {
	hit, isHit := s.Intersect(ray)
	if !isHit {
		return 0, false
	}
	return hit.Dist, true
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Things)
}

func validDistance(d float64) bool {
	return d >= 0 && !math.IsInf(d, 0) && !math.IsNaN(d)
}

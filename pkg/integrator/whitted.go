package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultMaxDepth is the number of mirror bounces traced before the
// reflection term is replaced by flat grey
const DefaultMaxDepth = 5

// WhittedIntegrator implements recursive Whitted ray tracing: Phong direct
// lighting with hard shadows from point lights plus perfect mirror
// reflection
type WhittedIntegrator struct {
	MaxDepth int
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(maxDepth int) *WhittedIntegrator {
	return &WhittedIntegrator{MaxDepth: maxDepth}
}

// RayColor traces a primary ray
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Color {
	return w.TraceRay(ray, s, 0)
}

// TraceRay returns the color seen along a ray at the given recursion depth
func (w *WhittedIntegrator) TraceRay(ray core.Ray, s *scene.Scene, depth int) core.Color {
	isect, isHit := s.Intersect(ray)
	if !isHit {
		return core.Background
	}
	return w.shade(isect, s, depth)
}

// shade combines local illumination at the hit with the mirror reflection
func (w *WhittedIntegrator) shade(isect geometry.Intersection, s *scene.Scene, depth int) core.Color {
	d := isect.Ray.Direction
	pos := isect.Point()
	normal := isect.Thing.NormalAt(pos)
	reflectDir := d.Subtract(normal.Multiply(normal.Dot(d)).Multiply(2.0))
	props := isect.Thing.Surface.Properties(pos)

	naturalColor := core.Background.Add(w.naturalColor(props, pos, normal, reflectDir, s))

	var reflectedColor core.Color
	if depth >= w.MaxDepth {
		reflectedColor = core.Grey
	} else {
		reflectedColor = w.reflectionColor(props, pos, reflectDir, s, depth)
	}

	return naturalColor.Add(reflectedColor)
}

// reflectionColor traces the mirror ray one level deeper
func (w *WhittedIntegrator) reflectionColor(props material.SurfaceProperties, pos, reflectDir core.Vec3, s *scene.Scene, depth int) core.Color {
	ray := core.NewRay(pos, reflectDir)
	return w.TraceRay(ray, s, depth+1).Scale(props.Reflect)
}

// naturalColor sums diffuse and specular light from every unshadowed light
func (w *WhittedIntegrator) naturalColor(props material.SurfaceProperties, pos, normal, reflectDir core.Vec3, s *scene.Scene) core.Color {
	result := core.Black
	reflectDirNorm := reflectDir.Normalize()

	for _, light := range s.Lights {
		_, lightDist, lightDir := light.Illuminate(pos)

		if w.inShadow(core.NewRay(pos, lightDir), lightDist, s) {
			continue
		}

		illum := lightDir.Dot(normal)
		lcolor := core.DefaultColor
		if illum > 0 {
			lcolor = light.Color.Scale(illum)
		}

		specular := lightDir.Dot(reflectDirNorm)
		scolor := core.DefaultColor
		if specular > 0 {
			scolor = light.Color.Scale(math.Pow(specular, props.Roughness))
		}

		result = result.
			Add(lcolor.Times(props.Diffuse)).
			Add(scolor.Times(props.Specular))
	}

	return result
}

// inShadow reports whether anything lies between the ray origin and a light
// lightDist away along the ray
func (w *WhittedIntegrator) inShadow(shadowRay core.Ray, lightDist float64, s *scene.Scene) bool {
	dist, isHit := s.TestRay(shadowRay)
	return isHit && dist <= lightDist
}

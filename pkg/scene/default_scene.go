package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the demo scene: a checkerboard floor, two shiny
// spheres and four coloured point lights
func NewDefaultScene() *Scene {
	camera := geometry.NewCamera(
		core.NewVec3(3.0, 2.0, 4.0),  // position
		core.NewVec3(-1.0, 0.5, 0.0), // look at
	)

	things := []geometry.Thing{
		geometry.NewPlane(core.NewVec3(0.0, 1.0, 0.0), 0.0, material.Checkerboard),
		geometry.NewSphere(core.NewVec3(0.0, 1.0, -0.25), 1.0, material.Shiny),
		geometry.NewSphere(core.NewVec3(-1.0, 0.5, 1.5), 0.5, material.Shiny),
	}

	pointLights := []lights.PointLight{
		lights.NewPointLight(core.NewVec3(-2.0, 2.5, 0.0), core.NewColor(0.49, 0.07, 0.07)),
		lights.NewPointLight(core.NewVec3(1.5, 2.5, 1.5), core.NewColor(0.07, 0.07, 0.49)),
		lights.NewPointLight(core.NewVec3(1.5, 2.5, -1.5), core.NewColor(0.07, 0.49, 0.071)),
		lights.NewPointLight(core.NewVec3(0.0, 3.5, 0.0), core.NewColor(0.21, 0.21, 0.35)),
	}

	return NewScene(camera, things, pointLights)
}

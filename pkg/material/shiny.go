package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// shinyProperties is constant over the whole surface: white diffuse, grey
// highlight and a tight specular lobe
func shinyProperties() SurfaceProperties {
	return SurfaceProperties{
		Diffuse:   core.White,
		Specular:  core.Grey,
		Reflect:   0.7,
		Roughness: 250.0,
	}
}

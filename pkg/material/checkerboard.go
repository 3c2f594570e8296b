package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// IsWhiteTile reports whether pos lies on a white checkerboard tile.
// Tiles are one world unit wide and change on integer x and z.
func IsWhiteTile(pos core.Vec3) bool {
	return int(math.Floor(pos.Z)+math.Floor(pos.X))%2 != 0
}

// checkerboardProperties alternates between a matte white tile and a
// reflective black tile
func checkerboardProperties(pos core.Vec3) SurfaceProperties {
	props := SurfaceProperties{
		Diffuse:   core.Black,
		Specular:  core.White,
		Reflect:   0.7,
		Roughness: 150.0,
	}
	if IsWhiteTile(pos) {
		props.Diffuse = core.White
		props.Reflect = 0.1
	}
	return props
}

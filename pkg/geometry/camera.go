package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// fieldOfViewScale stretches the right and up vectors and so sets the
// horizontal and vertical field of view
const fieldOfViewScale = 1.5

// Camera generates primary rays from a fixed position
type Camera struct {
	Position core.Vec3
	Forward  core.Vec3
	Right    core.Vec3
	Up       core.Vec3
}

// NewCamera builds the camera basis looking from pos towards lookAt
func NewCamera(pos, lookAt core.Vec3) Camera {
	down := core.NewVec3(0, -1, 0)
	forward := lookAt.Subtract(pos).Normalize()
	right := forward.Cross(down).Normalize().Multiply(fieldOfViewScale)
	up := forward.Cross(right).Normalize().Multiply(fieldOfViewScale)

	return Camera{
		Position: pos,
		Forward:  forward,
		Right:    right,
		Up:       up,
	}
}

// GetRay returns the primary ray through pixel (x, y) of a width x height
// image. Row 0 is the top of the image.
func (c Camera) GetRay(x, y, width, height int) core.Ray {
	return core.NewRay(c.Position, c.pointDirection(x, y, width, height))
}

func (c Camera) pointDirection(x, y, width, height int) core.Vec3 {
	w, h := float64(width), float64(height)
	recenterX := (float64(x) - w/2.0) / 2.0 / w
	recenterY := -(float64(y) - h/2.0) / 2.0 / h

	return c.Forward.
		Add(c.Right.Multiply(recenterX)).
		Add(c.Up.Multiply(recenterY)).
		Normalize()
}

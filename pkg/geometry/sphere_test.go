package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.Shiny)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"passes beside", core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1))},
		{"points away", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))},
		{"perpendicular offset", core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Intersect(tt.ray)
			if isHit {
				t.Errorf("Expected miss, but got hit at dist=%f", hit.Dist)
			}
			if hit != (Intersection{}) {
				t.Errorf("Expected zero intersection on miss, got %+v", hit)
			}
		})
	}
}

func TestSphere_Hit_ReturnsComputedHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.Shiny)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.Dist-1.0) > 1e-9 {
		t.Errorf("Expected dist=1, got dist=%f", hit.Dist)
	}
	if hit.Thing != sphere {
		t.Errorf("Expected intersection to carry the sphere, got %+v", hit.Thing)
	}
	if hit.Ray != ray {
		t.Errorf("Expected intersection to carry the ray, got %+v", hit.Ray)
	}
}

func TestSphere_Hit_PointOnSurface(t *testing.T) {
	center := core.NewVec3(-1, 0.5, 1.5)
	radius := 0.5
	sphere := NewSphere(center, radius, material.Shiny)
	origin := core.NewVec3(3, 2, 4)

	// Fan of rays aimed at points around the sphere center
	for dx := -0.4; dx <= 0.4; dx += 0.1 {
		for dy := -0.4; dy <= 0.4; dy += 0.1 {
			target := center.Add(core.NewVec3(dx, dy, 0))
			ray := core.NewRay(origin, target.Subtract(origin).Normalize())

			hit, isHit := sphere.Intersect(ray)
			if !isHit {
				continue
			}
			p := hit.Point()
			if d := math.Abs(p.Subtract(center).Length() - radius); d > 1e-9 {
				t.Errorf("Hit point %v is %g off the surface", p, d)
			}
		}
	}
}

func TestSphere_Hit_Glancing(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.Shiny)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	if hit.Point().Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point())
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 1, 0), 2.0, material.Shiny)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"top", core.NewVec3(0, 3, 0), core.NewVec3(0, 1, 0)},
		{"side", core.NewVec3(-2, 1, 0), core.NewVec3(-1, 0, 0)},
		{"front", core.NewVec3(0, 1, 2), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := sphere.NormalAt(tt.point)
			if n.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expected, n)
			}
		})
	}
}

func TestNewSphere_PrecomputesRadiusSquared(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 3, material.Checkerboard)
	if sphere.Radius2 != 9 {
		t.Errorf("Expected radius squared 9, got %f", sphere.Radius2)
	}
	if sphere.Kind != SphereKind || sphere.Surface != material.Checkerboard {
		t.Errorf("Unexpected sphere %+v", sphere)
	}
}

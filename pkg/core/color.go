package core

import (
	"image/color"
	"math"
)

// Color is a linear RGB triple. Channels are left unclamped while shading
// and only clamped when converted to a pixel.
type Color struct {
	R, G, B float64
}

// Commonly used colors
var (
	White = Color{1.0, 1.0, 1.0}
	Grey  = Color{0.5, 0.5, 0.5}
	Black = Color{0.0, 0.0, 0.0}

	// Background is returned for rays that hit nothing
	Background = Black
	// DefaultColor is the contribution of a light that does not reach a point
	DefaultColor = Black
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color multiplied by k
func (c Color) Scale(k float64) Color {
	return Color{k * c.R, k * c.G, k * c.B}
}

// Times returns the channel-wise product of two colors
func (c Color) Times(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// ToRGBA clamps every channel to [0, 1] and scales it to [0, 255],
// rounding to the nearest integer. Alpha is always opaque.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: legalize(c.R),
		G: legalize(c.G),
		B: legalize(c.B),
		A: 255,
	}
}

func legalize(v float64) uint8 {
	// min and max propagate NaN
	if math.IsNaN(v) {
		return 0
	}
	v = max(0.0, min(1.0, v))
	return uint8(math.Round(v * 255))
}

package renderer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// Config contains rendering configuration
type Config struct {
	Width      int  // Image width in pixels
	Height     int  // Image height in pixels
	MaxDepth   int  // Maximum mirror recursion depth
	Parallel   bool // Render tiles on a worker pool instead of a single loop
	NumWorkers int  // Number of parallel workers (0 = use CPU count)
	TileSize   int  // Edge length of a parallel work unit in pixels
}

// DefaultConfig returns the configuration of the demo render
func DefaultConfig() Config {
	return Config{
		Width:      500,
		Height:     500,
		MaxDepth:   integrator.DefaultMaxDepth,
		Parallel:   false,
		NumWorkers: 0,  // Auto-detect CPU count
		TileSize:   64,
	}
}

// Validate checks that the configuration describes a renderable image
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("number of workers must not be negative, got %d", c.NumWorkers)
	}
	if c.Parallel && c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	return nil
}

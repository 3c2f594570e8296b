package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int  // Total number of pixels rendered
	Tiles       int  // Number of tiles (1 for a sequential render)
	Workers     int  // Number of goroutines that traced rays
	Parallel    bool // Whether the worker pool was used
}

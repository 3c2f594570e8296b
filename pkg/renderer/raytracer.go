package renderer

import (
	"context"
	"fmt"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Sink receives finished pixels. It is only ever called from the goroutine
// that called Render.
type Sink interface {
	SetPixel(x, y int, c color.RGBA)
}

// Raytracer renders a scene into a Sink
type Raytracer struct {
	scene        *scene.Scene
	config       Config
	tileRenderer *TileRenderer
	logger       core.Logger
}

// NewRaytracer creates a new raytracer using Whitted shading
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) *Raytracer {
	return NewRaytracerWithIntegrator(s, config, integrator.NewWhittedIntegrator(config.MaxDepth), logger)
}

// NewRaytracerWithIntegrator creates a raytracer with a custom integrator
func NewRaytracerWithIntegrator(s *scene.Scene, config Config, integratorInst integrator.Integrator, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:        s,
		config:       config,
		tileRenderer: NewTileRenderer(s, integratorInst, config.Width, config.Height),
		logger:       logger,
	}
}

// Render computes every pixel of the image and writes it to sink. The
// sequential and parallel paths produce identical pixels.
func (rt *Raytracer) Render(ctx context.Context, sink Sink) (RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}

	if rt.config.Parallel {
		return rt.renderParallel(ctx, sink)
	}
	return rt.renderSequential(ctx, sink)
}

// renderSequential traces pixels row by row on the calling goroutine
func (rt *Raytracer) renderSequential(ctx context.Context, sink Sink) (RenderStats, error) {
	rt.logger.Printf("Rendering %dx%d sequentially (max depth %d)...\n",
		rt.config.Width, rt.config.Height, rt.config.MaxDepth)

	for y := 0; y < rt.config.Height; y++ {
		if err := ctx.Err(); err != nil {
			return RenderStats{}, fmt.Errorf("render cancelled at row %d: %w", y, err)
		}
		for x := 0; x < rt.config.Width; x++ {
			sink.SetPixel(x, y, rt.tileRenderer.RenderPixel(x, y))
		}
	}

	return RenderStats{
		TotalPixels: rt.config.Width * rt.config.Height,
		Tiles:       1,
		Workers:     1,
		Parallel:    false,
	}, nil
}

// renderParallel renders tiles on a worker pool into a shared buffer, then
// copies the buffer into the sink from the calling goroutine
func (rt *Raytracer) renderParallel(ctx context.Context, sink Sink) (RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	tiles := NewTileGrid(width, height, rt.config.TileSize)
	workerPool := NewWorkerPool(rt.tileRenderer, rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d in parallel: %d tiles on %d workers (max depth %d)...\n",
		width, height, len(tiles), workerPool.GetNumWorkers(), rt.config.MaxDepth)

	pixels := make([]color.RGBA, width*height)
	if err := workerPool.Run(ctx, tiles, pixels); err != nil {
		return RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sink.SetPixel(x, y, pixels[y*width+x])
		}
	}

	return RenderStats{
		TotalPixels: width * height,
		Tiles:       len(tiles),
		Workers:     workerPool.GetNumWorkers(),
		Parallel:    true,
	}, nil
}

package renderer

import (
	"context"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool renders tiles in parallel
type WorkerPool struct {
	tileRenderer *TileRenderer
	numWorkers   int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(tileRenderer *TileRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		tileRenderer: tileRenderer,
		numWorkers:   numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders all tiles into pixels and returns once every tile is done or
// the context is cancelled. Tiles are handed out in order but may finish in
// any order.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, pixels []color.RGBA) error {
	g, ctx := errgroup.WithContext(ctx)
	taskQueue := make(chan *Tile)

	g.Go(func() error {
		defer close(taskQueue) // No more tasks
		for _, tile := range tiles {
			select {
			case taskQueue <- tile:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			for tile := range taskQueue {
				if err := ctx.Err(); err != nil {
					return err
				}
				wp.tileRenderer.RenderTile(tile, pixels)
			}
			return nil
		})
	}

	return g.Wait()
}

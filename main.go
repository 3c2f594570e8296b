package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/imageio"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const defaultOutput = "go-raytracer.png"

// options holds the parsed command line
type options struct {
	parallel bool
	workers  int
	output   string
}

func main() {
	// Parse command line flags
	parallel := flag.Bool("parallel", false, "Render tiles on a worker pool instead of row by row")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = number of CPUs)")
	output := flag.String("out", defaultOutput, "Output image file (.png or .bmp)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Renders the built-in scene (two mirror spheres over a checkerboard) at 500x500.")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := options{parallel: *parallel, workers: *workers, output: *output}
	if err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newConfig builds the render configuration for the command line options
func newConfig(opts options) renderer.Config {
	config := renderer.DefaultConfig()
	config.Parallel = opts.parallel
	config.NumWorkers = opts.workers
	return config
}

// run renders the default scene and saves it to opts.output
func run(ctx context.Context, opts options, logger core.Logger) error {
	config := newConfig(opts)
	img := imageio.NewImage(config.Width, config.Height)
	raytracer := renderer.NewRaytracer(scene.NewDefaultScene(), config, logger)

	startTime := time.Now()
	stats, err := raytracer.Render(ctx, img)
	if err != nil {
		return err
	}
	renderTime := time.Since(startTime)

	if err := img.Save(opts.output); err != nil {
		return fmt.Errorf("error saving image: %w", err)
	}

	logger.Printf("Completed in %v (%d pixels, %d tiles, %d workers)\n",
		renderTime, stats.TotalPixels, stats.Tiles, stats.Workers)
	logger.Printf("Render saved as %s\n", opts.output)
	return nil
}

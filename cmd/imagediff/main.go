// Command imagediff compares two rendered images and writes a scaled
// difference image when they differ.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/imageio"
)

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

// run returns 0 when the images match and 1 when they differ or on error
func run(args []string, stdout io.Writer) (int, error) {
	flags := flag.NewFlagSet("imagediff", flag.ContinueOnError)
	flags.SetOutput(stdout)
	output := flags.String("out", "diff.bmp", "Where to write the difference image (.png or .bmp)")
	flags.Usage = func() {
		fmt.Fprintln(stdout, "Usage: imagediff [options] <image1> <image2>")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 1, err
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return 1, fmt.Errorf("expected 2 images, got %d", flags.NArg())
	}

	first, err := imageio.LoadImage(flags.Arg(0))
	if err != nil {
		return 1, err
	}
	second, err := imageio.LoadImage(flags.Arg(1))
	if err != nil {
		return 1, err
	}

	result, err := imageio.Diff(first, second)
	if err != nil {
		return 1, err
	}

	if result.Same() {
		fmt.Fprintln(stdout, "Images are the same")
		return 0, nil
	}

	fmt.Fprintf(stdout, "%d of %d pixels differ (max delta R=%d G=%d B=%d)\n",
		result.ChangedPixels, result.TotalPixels,
		result.MaxDelta.R, result.MaxDelta.G, result.MaxDelta.B)

	diffImage := imageio.NewImage(result.Image.Bounds().Dx(), result.Image.Bounds().Dy())
	for y := 0; y < diffImage.Height(); y++ {
		for x := 0; x < diffImage.Width(); x++ {
			diffImage.SetPixel(x, y, result.Image.RGBAAt(x, y))
		}
	}
	if err := diffImage.Save(*output); err != nil {
		return 1, err
	}
	fmt.Fprintf(stdout, "Difference written to %s\n", *output)
	return 1, nil
}

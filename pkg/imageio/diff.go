package imageio

import (
	"fmt"
	"image"
	"image/color"
)

// DiffResult describes how two images of the same size differ
type DiffResult struct {
	ChangedPixels int        // Pixels where any of R, G, B differ
	TotalPixels   int        // Pixels compared
	MaxDelta      color.RGBA // Largest absolute difference per channel
	Image         *image.RGBA
}

// Same reports whether the images are identical in R, G and B
func (d DiffResult) Same() bool {
	return d.ChangedPixels == 0
}

// Diff compares two images pixel by pixel. The returned diff image holds the
// absolute channel differences stretched so the largest difference in each
// channel maps to 255. Alpha is ignored.
func Diff(a, b image.Image) (DiffResult, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return DiffResult{}, fmt.Errorf("image size does not match (%d, %d) != (%d, %d)",
			ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy())
	}

	width, height := ab.Dx(), ab.Dy()
	result := DiffResult{
		TotalPixels: width * height,
		MaxDelta:    color.RGBA{A: 255},
		Image:       image.NewRGBA(image.Rect(0, 0, width, height)),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pa := color.RGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y)).(color.RGBA)
			pb := color.RGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y)).(color.RGBA)
			delta := color.RGBA{
				R: absDiff(pa.R, pb.R),
				G: absDiff(pa.G, pb.G),
				B: absDiff(pa.B, pb.B),
				A: 255,
			}

			if delta.R != 0 || delta.G != 0 || delta.B != 0 {
				result.ChangedPixels++
			}
			result.MaxDelta.R = max(result.MaxDelta.R, delta.R)
			result.MaxDelta.G = max(result.MaxDelta.G, delta.G)
			result.MaxDelta.B = max(result.MaxDelta.B, delta.B)
			result.Image.SetRGBA(x, y, delta)
		}
	}

	// Stretch each channel so that faint differences are visible
	pix := result.Image.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = stretch(pix[i], result.MaxDelta.R)
		pix[i+1] = stretch(pix[i+1], result.MaxDelta.G)
		pix[i+2] = stretch(pix[i+2], result.MaxDelta.B)
	}

	return result, nil
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func stretch(v, maxValue uint8) uint8 {
	if maxValue == 0 {
		return 0
	}
	return uint8(int(v) * 255 / int(maxValue))
}

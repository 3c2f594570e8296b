package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Image is an 8-bit RGBA pixel buffer that a render writes into
type Image struct {
	rgba *image.RGBA
}

// NewImage creates a black, fully opaque image
func NewImage(width, height int) *Image {
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(rgba.Pix); i += 4 {
		rgba.Pix[i] = 255
	}
	return &Image{rgba: rgba}
}

// Width returns the image width in pixels
func (img *Image) Width() int {
	return img.rgba.Bounds().Dx()
}

// Height returns the image height in pixels
func (img *Image) Height() int {
	return img.rgba.Bounds().Dy()
}

// SetPixel stores the color at (x, y). Writes outside the image are ignored.
func (img *Image) SetPixel(x, y int, c color.RGBA) {
	img.rgba.SetRGBA(x, y, c)
}

// RGBA returns the underlying image
func (img *Image) RGBA() *image.RGBA {
	return img.rgba
}

// Save writes the image to path, choosing the encoder from the file
// extension (.png or .bmp)
func (img *Image) Save(path string) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := encode(file, img.rgba); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("unsupported image format %q (use .png or .bmp)", ext)
	}
}

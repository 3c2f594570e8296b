package imageio

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *Image {
	img := NewImage(2, 2)
	img.SetPixel(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetPixel(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetPixel(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.SetPixel(1, 1, color.RGBA{R: 0, G: 0, B: 128, A: 255})
	return img
}

func TestNewImage_OpaqueBlack(t *testing.T) {
	img := NewImage(3, 2)
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("Expected 3x2 image, got %dx%d", img.Width(), img.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if c := img.RGBA().RGBAAt(x, y); c != (color.RGBA{A: 255}) {
				t.Errorf("Expected opaque black at (%d,%d), got %v", x, y, c)
			}
		}
	}
}

func TestImage_SaveAndLoad(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"png", "render.png"},
		{"bmp", "render.bmp"},
		{"upper case extension", "RENDER.PNG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			original := testImage()

			if err := original.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}

			diff, err := Diff(original.RGBA(), loaded)
			if err != nil {
				t.Fatalf("Diff failed: %v", err)
			}
			if !diff.Same() {
				t.Errorf("Expected lossless round trip, %d pixels changed", diff.ChangedPixels)
			}
		})
	}
}

func TestImage_SaveUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.gif")

	if err := testImage().Save(path); err == nil {
		t.Error("Expected error for unsupported format, got nil")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no file to be created for unsupported format")
	}
}

func TestImage_SaveReportsIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "render.png")

	if err := testImage().Save(path); err == nil {
		t.Error("Expected error when the directory does not exist, got nil")
	}
}

func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

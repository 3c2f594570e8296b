package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer turns pixel coordinates into finished pixels using an integrator
type TileRenderer struct {
	scene         *scene.Scene
	integrator    integrator.Integrator
	width, height int
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator, width, height int) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		integrator: integratorInst,
		width:      width,
		height:     height,
	}
}

// RenderPixel traces the primary ray through (x, y) and converts the result
// to an 8-bit pixel
func (tr *TileRenderer) RenderPixel(x, y int) color.RGBA {
	ray := tr.scene.Camera.GetRay(x, y, tr.width, tr.height)
	return tr.integrator.RayColor(ray, tr.scene).ToRGBA()
}

// RenderTile renders every pixel inside the tile into a row-major buffer of
// the whole image. Tiles never overlap, so concurrent calls on distinct
// tiles are safe.
func (tr *TileRenderer) RenderTile(tile *Tile, pixels []color.RGBA) {
	bounds := tile.Bounds
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels[y*tr.width+x] = tr.RenderPixel(x, y)
		}
	}
}

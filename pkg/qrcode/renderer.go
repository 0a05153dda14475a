package qrcode

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// MaxEdge is the largest image edge, in pixels, a renderer will allocate.
const MaxEdge = 1 << 14

// RenderOptions controls rasterization of a module grid.
type RenderOptions struct {
	ModuleSize int         // pixels per module edge
	Border     int         // quiet zone width in modules
	Fill       color.Color // dark modules; black when nil
	Back       color.Color // light modules and border; white when nil
}

// Renderer rasterizes a module grid.
type Renderer interface {
	Render(g Grid, opts RenderOptions) (image.Image, error)
}

// ImageRenderer draws the grid at one pixel per module and scales it up with
// a nearest-neighbour scaler, so every module becomes a solid square.
type ImageRenderer struct {
	scaler draw.Scaler
}

// NewRenderer returns a renderer backed by draw.NearestNeighbor.
func NewRenderer() ImageRenderer {
	return ImageRenderer{scaler: draw.NearestNeighbor}
}

// Render returns a paletted image whose edge is
// (g.Size() + 2*opts.Border) * opts.ModuleSize pixels. Edges above MaxEdge
// fail with ErrInvalidDimensions.
func (r ImageRenderer) Render(g Grid, opts RenderOptions) (image.Image, error) {
	if g.Size() == 0 {
		return nil, ErrInvalidGrid
	}
	if opts.ModuleSize <= 0 || opts.Border < 0 {
		return nil, ErrInvalidDimensions
	}
	if err := checkEdge(g.Size(), opts); err != nil {
		return nil, err
	}

	fill, back := opts.Fill, opts.Back
	if fill == nil {
		fill = color.Black
	}
	if back == nil {
		back = color.White
	}
	palette := color.Palette{back, fill}

	side := g.Size() + 2*opts.Border
	src := image.NewPaletted(image.Rect(0, 0, side, side), palette)
	for y := range g.Size() {
		for x := range g.Size() {
			if g.At(x, y) {
				src.SetColorIndex(x+opts.Border, y+opts.Border, 1)
			}
		}
	}

	if opts.ModuleSize == 1 {
		return src, nil
	}

	scaler := r.scaler
	if scaler == nil {
		scaler = draw.NearestNeighbor
	}

	px := side * opts.ModuleSize
	dst := image.NewPaletted(image.Rect(0, 0, px, px), palette)
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// checkEdge rejects options whose pixel edge exceeds MaxEdge without
// computing the product, which may overflow.
func checkEdge(size int, opts RenderOptions) error {
	if opts.Border <= MaxEdge && size+2*opts.Border <= MaxEdge/opts.ModuleSize {
		return nil
	}
	return fmt.Errorf("%w: %d modules with border %d at module size %d exceed %d px",
		ErrInvalidDimensions, size, opts.Border, opts.ModuleSize, MaxEdge)
}

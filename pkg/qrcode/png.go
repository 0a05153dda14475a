package qrcode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// DefaultSize is the image edge used by Generate when size is not positive.
// Sizes above MaxEdge fail with ErrInvalidDimensions.
const DefaultSize = 256

// quietZone is the standard border width in modules.
const quietZone = 4

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// Generate returns a size x size PNG QR code for content at medium error
// correction with a standard quiet zone. Modules are scaled by the largest
// whole factor that fits; the remainder is padded with background. If the
// symbol does not fit at one pixel per module the image grows to fit.
func Generate(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxEdge {
		return nil, fmt.Errorf("%w: size %d exceeds %d px", ErrInvalidDimensions, size, MaxEdge)
	}

	grid, err := NewEncoder().Encode(content, Medium)
	if err != nil {
		return nil, err
	}

	side := grid.Size() + 2*quietZone
	moduleSize := max(size/side, 1)

	img, err := NewRenderer().Render(grid, RenderOptions{
		ModuleSize: moduleSize,
		Border:     quietZone,
	})
	if err != nil {
		return nil, err
	}

	if edge := img.Bounds().Dx(); edge < size {
		canvas := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{color.White, color.Black})
		offset := (size - edge) / 2
		draw.Draw(canvas, img.Bounds().Add(image.Pt(offset, offset)), img, image.Point{}, draw.Src)
		img = canvas
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateBase64Image returns Generate's output as a data URI suitable for
// an <img> src attribute.
func GenerateBase64Image(content string, size int) (string, error) {
	pngBytes, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes), nil
}

package urlqr

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrymomot/urlqr/core/logger"
	"github.com/dmitrymomot/urlqr/pkg/qrcode"
)

// ErrorCorrection is the level used for every symbol.
const ErrorCorrection = qrcode.Medium

// Generator runs the validate, encode, render and persist pipeline.
// It holds no per-request state and is safe for concurrent use when its
// encoder and renderer are.
type Generator struct {
	encoder  qrcode.Encoder
	renderer qrcode.Renderer
	logger   *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithEncoder replaces the symbol encoder.
func WithEncoder(e qrcode.Encoder) GeneratorOption {
	return func(g *Generator) {
		if e != nil {
			g.encoder = e
		}
	}
}

// WithRenderer replaces the image renderer.
func WithRenderer(r qrcode.Renderer) GeneratorOption {
	return func(g *Generator) {
		if r != nil {
			g.renderer = r
		}
	}
}

// WithLogger sets the logger used for generation records.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator returns a generator using the skip2 encoder, the
// nearest-neighbour renderer and a silent logger unless overridden.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		encoder:  qrcode.NewEncoder(),
		renderer: qrcode.NewRenderer(),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes the QR image for req and returns its absolute path.
//
// Validation failures return before the encoder, renderer or filesystem are
// touched. The file is created or truncated and written once; a failed write
// may leave a partial file behind.
func (g *Generator) Generate(req Request) (string, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return "", err
	}

	fill, err := qrcode.ParseHexColor(req.FillColor)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	back, err := qrcode.ParseHexColor(req.BackColor)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}

	path, err := filepath.Abs(NormalizeOutputPath(req.OutputPath))
	if err != nil {
		return "", fmt.Errorf("%w: resolve output path %q: %w", ErrWriteFailure, req.OutputPath, err)
	}

	payload := req.Payload
	grid, err := g.encoder.Encode(payload, ErrorCorrection)
	if err != nil {
		if errors.Is(err, qrcode.ErrContentTooLong) {
			return "", fmt.Errorf("%w: %d bytes exceed symbol capacity at level %s: %w", ErrPayloadTooLarge, len(payload), ErrorCorrection, err)
		}
		return "", fmt.Errorf("encode %q: %w", payload, err)
	}

	img, err := g.renderer.Render(grid, qrcode.RenderOptions{
		ModuleSize: req.ModuleSize,
		Border:     req.BorderWidth,
		Fill:       fill,
		Back:       back,
	})
	if err != nil {
		return "", fmt.Errorf("%w: render %s: %w", ErrWriteFailure, path, err)
	}

	if err := writePNG(path, img); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}

	g.logger.Debug("qr code saved",
		logger.Component("generator"),
		logger.Payload(payload),
		logger.Path(path),
		logger.Modules(grid.Size()),
		logger.ErrorCorrection(ErrorCorrection.String()),
		logger.Dimensions(img.Bounds().Dx(), img.Bounds().Dy()),
		logger.Elapsed(start),
	)

	return path, nil
}

// Generate runs req through a generator with default collaborators.
func Generate(req Request) (string, error) {
	return NewGenerator().Generate(req)
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return qrcode.EncodePNG(f, img)
}

package urlqr

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/urlqr/core/validator"
)

// Defaults applied by NewRequest.
const (
	DefaultModuleSize  = 10
	DefaultBorderWidth = 4
	DefaultFillColor   = "#000000"
	DefaultBackColor   = "#FFFFFF"
	DefaultOutputPath  = "qr_output"
)

// Extension is the only file extension the generator writes.
const Extension = ".png"

// Request holds the parameters of a single generation.
type Request struct {
	Payload     string // http or https URL to encode
	ModuleSize  int    // pixels per module edge, > 0
	BorderWidth int    // quiet zone in modules, >= 0
	FillColor   string // dark module color, #rgb or #rrggbb
	BackColor   string // light module and border color, #rgb or #rrggbb
	OutputPath  string // destination; the extension is always replaced with .png
}

// RequestOption overrides a default of NewRequest.
type RequestOption func(*Request)

// WithModuleSize sets the pixel size of one module.
func WithModuleSize(n int) RequestOption {
	return func(r *Request) {
		r.ModuleSize = n
	}
}

// WithBorderWidth sets the quiet zone width in modules.
func WithBorderWidth(n int) RequestOption {
	return func(r *Request) {
		r.BorderWidth = n
	}
}

// WithFillColor sets the dark module color.
func WithFillColor(hex string) RequestOption {
	return func(r *Request) {
		r.FillColor = hex
	}
}

// WithBackColor sets the background color.
func WithBackColor(hex string) RequestOption {
	return func(r *Request) {
		r.BackColor = hex
	}
}

// WithOutputPath sets the destination path.
func WithOutputPath(path string) RequestOption {
	return func(r *Request) {
		r.OutputPath = path
	}
}

// NewRequest returns a request for payload with defaults applied before opts.
func NewRequest(payload string, opts ...RequestOption) Request {
	r := Request{
		Payload:     payload,
		ModuleSize:  DefaultModuleSize,
		BorderWidth: DefaultBorderWidth,
		FillColor:   DefaultFillColor,
		BackColor:   DefaultBackColor,
		OutputPath:  DefaultOutputPath,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Validate checks the payload, then the colors, then the dimensions, and
// returns the first failing group wrapped in ErrInvalidPayload,
// ErrInvalidColor or ErrInvalidSize.
func (r Request) Validate() error {
	if err := validator.Apply(
		validator.URL("url", r.Payload),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if err := validator.Apply(
		validator.HexColor("fill_color", r.FillColor),
		validator.HexColor("back_color", r.BackColor),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}

	if err := validator.Apply(
		validator.Positive("module_size", r.ModuleSize),
		validator.NonNegative("border_width", r.BorderWidth),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}

	return nil
}

// NormalizeOutputPath replaces the extension of p with Extension, or appends
// it when p has none. An empty p, or one naming a directory such as "." or
// "/", resolves to DefaultOutputPath inside it.
func NormalizeOutputPath(p string) string {
	if strings.TrimSpace(p) == "" {
		return DefaultOutputPath + Extension
	}

	p = filepath.Clean(p)
	base := filepath.Base(p)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return filepath.Join(p, DefaultOutputPath+Extension)
	}

	ext := filepath.Ext(base)
	if ext == base {
		// dotfile such as ".qr" has no extension
		ext = ""
	}
	return strings.TrimSuffix(p, ext) + Extension
}

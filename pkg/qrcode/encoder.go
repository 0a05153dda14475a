package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// Encoder turns content into a module grid.
type Encoder interface {
	Encode(content string, level Level) (Grid, error)
}

// SymbolEncoder encodes content with github.com/skip2/go-qrcode.
// The smallest symbol version that fits the content at the requested level is
// selected automatically.
type SymbolEncoder struct{}

// NewEncoder returns the default symbol encoder.
func NewEncoder() SymbolEncoder {
	return SymbolEncoder{}
}

// Encode builds the module grid for content. It returns ErrContentTooLong when
// even version 40 cannot hold the content at the given level.
func (SymbolEncoder) Encode(content string, level Level) (Grid, error) {
	if content == "" {
		return Grid{}, ErrEmptyContent
	}

	code, err := qr.New(content, level.recovery())
	if err != nil {
		return Grid{}, fmt.Errorf("%w: %d bytes at level %s: %w", ErrContentTooLong, len(content), level, err)
	}

	code.DisableBorder = true
	return NewGrid(code.Bitmap())
}

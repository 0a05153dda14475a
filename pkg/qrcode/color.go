package qrcode

import (
	"fmt"
	"image/color"
	"regexp"
)

// HexColorPattern matches "#rgb" and "#rrggbb" colors.
var HexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseHexColor converts "#rgb" or "#rrggbb" into an opaque color.
// Short forms are expanded, so "#f0a" equals "#ff00aa".
func ParseHexColor(s string) (color.RGBA, error) {
	if !HexColorPattern.MatchString(s) {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	digits := s[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}

	return color.RGBA{
		R: hexByte(digits[0], digits[1]),
		G: hexByte(digits[2], digits[3]),
		B: hexByte(digits[4], digits[5]),
		A: 0xff,
	}, nil
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

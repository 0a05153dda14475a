package qrcode

import "errors"

var (
	ErrEmptyContent      = errors.New("qrcode: content is empty")
	ErrContentTooLong    = errors.New("qrcode: content too long to encode")
	ErrInvalidGrid       = errors.New("qrcode: module grid must be square and non-empty")
	ErrInvalidDimensions = errors.New("qrcode: module size must be positive and border non-negative")
	ErrInvalidColor      = errors.New("qrcode: invalid hex color")
)

package urlqr

import "errors"

// Generation errors. Each is returned wrapped with the rejected value or the
// underlying cause; match with errors.Is.
var (
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidSize     = errors.New("invalid size")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrWriteFailure    = errors.New("write failure")
)

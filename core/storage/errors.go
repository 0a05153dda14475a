package storage

import "errors"

var (
	ErrInvalidConfig      = errors.New("storage: invalid configuration")
	ErrInvalidPath        = errors.New("storage: invalid object key")
	ErrNilBody            = errors.New("storage: body is nil")
	ErrFailedToOpenFile   = errors.New("storage: failed to open file")
	ErrAccessDenied       = errors.New("storage: access denied")
	ErrBucketNotFound     = errors.New("storage: bucket not found")
	ErrRequestTimeout     = errors.New("storage: request timeout")
	ErrServiceUnavailable = errors.New("storage: service unavailable")
	ErrOperationTimeout   = errors.New("storage: operation timed out")
	ErrOperationCanceled  = errors.New("storage: operation canceled")
)

package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/urlqr/core/storage"
)

// apiErrors maps S3 error codes onto storage sentinels.
var apiErrors = map[string]error{
	"AccessDenied":          storage.ErrAccessDenied,
	"InvalidAccessKeyId":    storage.ErrAccessDenied,
	"SignatureDoesNotMatch": storage.ErrAccessDenied,
	"NoSuchBucket":          storage.ErrBucketNotFound,
	"RequestTimeout":        storage.ErrRequestTimeout,
	"SlowDown":              storage.ErrServiceUnavailable,
	"ServiceUnavailable":    storage.ErrServiceUnavailable,
	"InternalError":         storage.ErrServiceUnavailable,
}

func classifyError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", storage.ErrOperationTimeout, op)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s", storage.ErrOperationCanceled, op)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: %s", storage.ErrBucketNotFound, op)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if sentinel, ok := apiErrors[apiErr.ErrorCode()]; ok {
			return fmt.Errorf("%w: %s", sentinel, op)
		}
		return fmt.Errorf("s3 %s: %s: %w", op, apiErr.ErrorCode(), err)
	}

	return fmt.Errorf("s3 %s: %w", op, err)
}

package s3_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/urlqr/core/storage"
	"github.com/dmitrymomot/urlqr/integration/storage/s3"
)

type mockS3Client struct {
	PutObjectFunc func(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
	return m.PutObjectFunc(ctx, params, optFns...)
}

func newStorage(t *testing.T, client s3.Client, cfg s3.Config, opts ...s3.Option) *s3.Storage {
	t.Helper()
	if cfg.Bucket == "" {
		cfg.Bucket = "qr-codes"
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	store, err := s3.New(t.Context(), cfg, append([]s3.Option{s3.WithClient(client)}, opts...)...)
	require.NoError(t, err)
	return store
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := s3.New(t.Context(), s3.Config{Region: "us-east-1"})
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)

	_, err = s3.New(t.Context(), s3.Config{Bucket: "b"})
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)
}

func TestStorage_Put(t *testing.T) {
	t.Parallel()

	var got *s3aws.PutObjectInput
	var body []byte
	client := &mockS3Client{
		PutObjectFunc: func(_ context.Context, params *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
			got = params
			var err error
			body, err = io.ReadAll(params.Body)
			return &s3aws.PutObjectOutput{}, err
		},
	}
	store := newStorage(t, client, s3.Config{})

	obj, err := store.Put(t.Context(), "/codes/site.png", strings.NewReader("png"), 3, "image/png")
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "qr-codes", aws.ToString(got.Bucket))
	assert.Equal(t, "codes/site.png", aws.ToString(got.Key))
	assert.Equal(t, "image/png", aws.ToString(got.ContentType))
	assert.Equal(t, int64(3), aws.ToInt64(got.ContentLength))
	assert.Equal(t, []byte("png"), body)

	assert.Equal(t, "codes/site.png", obj.Key)
	assert.Equal(t, int64(3), obj.Size)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, "https://qr-codes.s3.us-east-1.amazonaws.com/codes/site.png", obj.URL)
}

func TestStorage_PutCacheControl(t *testing.T) {
	t.Parallel()

	var got *s3aws.PutObjectInput
	client := &mockS3Client{
		PutObjectFunc: func(_ context.Context, params *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
			got = params
			return &s3aws.PutObjectOutput{}, nil
		},
	}

	store := newStorage(t, client, s3.Config{CacheControl: "public, max-age=31536000, immutable"})
	_, err := store.Put(t.Context(), "a.png", strings.NewReader("x"), 1, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "public, max-age=31536000, immutable", aws.ToString(got.CacheControl))

	store = newStorage(t, client, s3.Config{})
	_, err = store.Put(t.Context(), "a.png", strings.NewReader("x"), 1, "image/png")
	require.NoError(t, err)
	assert.Nil(t, got.CacheControl)
}

func TestStorage_PutUnknownSizeAndType(t *testing.T) {
	t.Parallel()

	var got *s3aws.PutObjectInput
	client := &mockS3Client{
		PutObjectFunc: func(_ context.Context, params *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
			got = params
			return &s3aws.PutObjectOutput{}, nil
		},
	}
	store := newStorage(t, client, s3.Config{})

	_, err := store.Put(t.Context(), "k", strings.NewReader("x"), -1, "")
	require.NoError(t, err)
	assert.Nil(t, got.ContentLength)
	assert.Equal(t, "application/octet-stream", aws.ToString(got.ContentType))
}

func TestStorage_PutRejectsBadInput(t *testing.T) {
	t.Parallel()

	client := &mockS3Client{
		PutObjectFunc: func(context.Context, *s3aws.PutObjectInput, ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
			t.Fatal("PutObject must not be called")
			return nil, nil
		},
	}
	store := newStorage(t, client, s3.Config{})

	_, err := store.Put(t.Context(), "../escape.png", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, storage.ErrInvalidPath)

	_, err = store.Put(t.Context(), "", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, storage.ErrInvalidPath)

	_, err = store.Put(t.Context(), "k", nil, 1, "image/png")
	assert.ErrorIs(t, err, storage.ErrNilBody)
}

func TestStorage_UploadTimeout(t *testing.T) {
	t.Parallel()

	client := &mockS3Client{
		PutObjectFunc: func(ctx context.Context, _ *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return &s3aws.PutObjectOutput{}, nil
		},
	}
	store := newStorage(t, client, s3.Config{}, s3.WithUploadTimeout(time.Minute))

	_, err := store.Put(t.Context(), "k", strings.NewReader("x"), 1, "image/png")
	require.NoError(t, err)
}

func TestStorage_ErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"deadline", context.DeadlineExceeded, storage.ErrOperationTimeout},
		{"canceled", context.Canceled, storage.ErrOperationCanceled},
		{"no such bucket type", &types.NoSuchBucket{}, storage.ErrBucketNotFound},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, storage.ErrAccessDenied},
		{"request timeout", &smithy.GenericAPIError{Code: "RequestTimeout"}, storage.ErrRequestTimeout},
		{"slow down", &smithy.GenericAPIError{Code: "SlowDown"}, storage.ErrServiceUnavailable},
		{"unavailable", &smithy.GenericAPIError{Code: "ServiceUnavailable"}, storage.ErrServiceUnavailable},
		{"no such bucket code", &smithy.GenericAPIError{Code: "NoSuchBucket"}, storage.ErrBucketNotFound},
		{"bad signature", &smithy.GenericAPIError{Code: "SignatureDoesNotMatch"}, storage.ErrAccessDenied},
		{"internal error", &smithy.GenericAPIError{Code: "InternalError"}, storage.ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := &mockS3Client{
				PutObjectFunc: func(context.Context, *s3aws.PutObjectInput, ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
					return nil, tt.err
				},
			}
			store := newStorage(t, client, s3.Config{})

			_, err := store.Put(t.Context(), "k", strings.NewReader("x"), 1, "image/png")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStorage_UnknownErrorsKeepCause(t *testing.T) {
	t.Parallel()

	apiErr := &smithy.GenericAPIError{Code: "EntityTooLarge", Message: "too big"}
	plain := errors.New("connection reset")

	for _, cause := range []error{apiErr, plain} {
		client := &mockS3Client{
			PutObjectFunc: func(context.Context, *s3aws.PutObjectInput, ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
				return nil, cause
			},
		}
		store := newStorage(t, client, s3.Config{})

		_, err := store.Put(t.Context(), "k", strings.NewReader("x"), 1, "image/png")
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "s3 put k")
	}

	client := &mockS3Client{
		PutObjectFunc: func(context.Context, *s3aws.PutObjectInput, ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
			return nil, apiErr
		},
	}
	_, err := newStorage(t, client, s3.Config{}).Put(t.Context(), "k", strings.NewReader("x"), 1, "")
	assert.Contains(t, err.Error(), "s3 put k: EntityTooLarge")
}

func TestStorage_URL(t *testing.T) {
	t.Parallel()

	client := &mockS3Client{}

	tests := []struct {
		name string
		cfg  s3.Config
		want string
	}{
		{
			name: "aws virtual hosted",
			cfg:  s3.Config{},
			want: "https://qr-codes.s3.us-east-1.amazonaws.com/codes/a.png",
		},
		{
			name: "aws path style",
			cfg:  s3.Config{ForcePathStyle: true},
			want: "https://s3.us-east-1.amazonaws.com/qr-codes/codes/a.png",
		},
		{
			name: "base url",
			cfg:  s3.Config{BaseURL: "https://cdn.example.com/"},
			want: "https://cdn.example.com/codes/a.png",
		},
		{
			name: "minio path style",
			cfg:  s3.Config{Endpoint: "http://localhost:9000", ForcePathStyle: true},
			want: "http://localhost:9000/qr-codes/codes/a.png",
		},
		{
			name: "spaces virtual hosted",
			cfg:  s3.Config{Endpoint: "https://nyc3.digitaloceanspaces.com"},
			want: "https://qr-codes.nyc3.digitaloceanspaces.com/codes/a.png",
		},
		{
			name: "endpoint without scheme",
			cfg:  s3.Config{Endpoint: "storage.example.com", ForcePathStyle: true},
			want: "https://storage.example.com/qr-codes/codes/a.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newStorage(t, client, tt.cfg)
			assert.Equal(t, tt.want, store.URL("/codes/a.png"))
		})
	}
}

package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/urlqr/core/storage"
)

var _ storage.Storage = (*Storage)(nil)

// Client is the part of the S3 API used for publishing.
type Client interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
}

// Config describes the target bucket.
type Config struct {
	Bucket      string
	Region      string
	AccessKeyID string
	SecretKey   string

	// Endpoint points at an S3-compatible service (MinIO, Spaces, Wasabi).
	Endpoint string
	// BaseURL overrides the public URL prefix, e.g. a CDN in front of the bucket.
	BaseURL        string
	ForcePathStyle bool

	// CacheControl is sent with every object when set.
	CacheControl string
}

// Storage uploads objects to one bucket.
type Storage struct {
	client        Client
	cfg           Config
	uploadTimeout time.Duration
}

// Option configures New.
type Option func(*options)

type options struct {
	client        Client
	httpClient    *http.Client
	loadOptions   []func(*config.LoadOptions) error
	clientOptions []func(*s3aws.Options)
	uploadTimeout time.Duration
}

// WithClient uses a pre-built client instead of loading AWS configuration.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithHTTPClient sets the HTTP client for SDK requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithConfigOption appends an AWS config load option.
func WithConfigOption(fn func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.loadOptions = append(o.loadOptions, fn)
	}
}

// WithClientOption appends an S3 client option.
func WithClientOption(fn func(*s3aws.Options)) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, fn)
	}
}

// WithUploadTimeout bounds each upload. Zero leaves the caller's deadline in
// charge.
func WithUploadTimeout(d time.Duration) Option {
	return func(o *options) {
		o.uploadTimeout = d
	}
}

// New builds a Storage. Bucket and Region are required. Without WithClient the
// AWS default credential chain is used unless static keys are configured.
func New(ctx context.Context, cfg Config, opts ...Option) (*Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", storage.ErrInvalidConfig)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: region is required", storage.ErrInvalidConfig)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		c, err := newClient(ctx, cfg, o)
		if err != nil {
			return nil, err
		}
		client = c
	}

	return &Storage{
		client:        client,
		cfg:           cfg,
		uploadTimeout: o.uploadTimeout,
	}, nil
}

func newClient(ctx context.Context, cfg Config, o *options) (*s3aws.Client, error) {
	load := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		load = append(load, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}
	if o.httpClient != nil {
		load = append(load, config.WithHTTPClient(o.httpClient))
	}
	load = append(load, o.loadOptions...)

	awsCfg, err := config.LoadDefaultConfig(ctx, load...)
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %w", storage.ErrInvalidConfig, err)
	}

	return s3aws.NewFromConfig(awsCfg, func(so *s3aws.Options) {
		if cfg.Endpoint != "" {
			so.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		so.UsePathStyle = cfg.ForcePathStyle
		for _, fn := range o.clientOptions {
			fn(so)
		}
	}), nil
}

// Put uploads body under key. A negative size sends the object without a
// Content-Length; an empty content type falls back to application/octet-stream.
func (s *Storage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*storage.Object, error) {
	if body == nil {
		return nil, storage.ErrNilBody
	}
	key, err := storage.CleanKey(key)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	in := &s3aws.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		in.ContentLength = aws.Int64(size)
	}
	if s.cfg.CacheControl != "" {
		in.CacheControl = aws.String(s.cfg.CacheControl)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		return nil, classifyError(err, "put "+key)
	}

	return &storage.Object{
		Key:         key,
		Size:        size,
		ContentType: contentType,
		URL:         s.URL(key),
	}, nil
}

// URL returns the public URL of key. BaseURL wins, then a custom Endpoint,
// then the regional AWS host. ForcePathStyle puts the bucket in the path.
func (s *Storage) URL(key string) string {
	key = strings.TrimPrefix(key, "/")

	if s.cfg.BaseURL != "" {
		return strings.TrimSuffix(s.cfg.BaseURL, "/") + "/" + key
	}

	scheme, host := "https", fmt.Sprintf("s3.%s.amazonaws.com", s.cfg.Region)
	if s.cfg.Endpoint != "" {
		host = strings.TrimSuffix(s.cfg.Endpoint, "/")
		if rest, ok := strings.CutPrefix(host, "http://"); ok {
			scheme, host = "http", rest
		} else {
			host = strings.TrimPrefix(host, "https://")
		}
	}

	if s.cfg.ForcePathStyle {
		return fmt.Sprintf("%s://%s/%s/%s", scheme, host, s.cfg.Bucket, key)
	}
	return fmt.Sprintf("%s://%s.%s/%s", scheme, s.cfg.Bucket, host, key)
}

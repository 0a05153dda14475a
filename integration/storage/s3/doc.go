// Package s3 publishes objects to Amazon S3 and S3-compatible services.
//
// Storage implements storage.Storage on top of the AWS SDK v2 PutObject call.
// Any S3-compatible service works when Endpoint is set.
//
// Basic usage:
//
//	import (
//		"github.com/dmitrymomot/urlqr/core/storage"
//		"github.com/dmitrymomot/urlqr/integration/storage/s3"
//	)
//
//	store, err := s3.New(ctx, s3.Config{
//		Bucket:       "qr-codes",
//		Region:       "us-east-1",
//		CacheControl: "public, max-age=31536000, immutable",
//	})
//	if err != nil {
//		return err
//	}
//
//	obj, err := storage.PutFile(ctx, store, "codes/site.png", "/tmp/site.png")
//	if err != nil {
//		return err
//	}
//	fmt.Println(obj.URL)
//
// # S3-Compatible Services
//
// MinIO configuration:
//
//	cfg := s3.Config{
//		Bucket:         "my-bucket",
//		Region:         "us-east-1", // Required
//		AccessKeyID:    "minioadmin",
//		SecretKey:      "minioadmin",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true, // Required for MinIO
//	}
//
// DigitalOcean Spaces with CDN:
//
//	cfg := s3.Config{
//		Bucket:   "my-space",
//		Region:   "nyc3",
//		Endpoint: "https://nyc3.digitaloceanspaces.com",
//		BaseURL:  "https://my-space.nyc3.cdn.digitaloceanspaces.com",
//	}
//
// # Configuration Options
//
//	// Custom HTTP client
//	store, err := s3.New(ctx, cfg, s3.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}))
//
//	// Upload timeout
//	store, err := s3.New(ctx, cfg, s3.WithUploadTimeout(time.Minute))
//
//	// Custom S3 client for testing
//	store, err := s3.New(ctx, cfg, s3.WithClient(mockClient))
//
// # Errors
//
// Failures are mapped onto core/storage sentinels (ErrAccessDenied,
// ErrBucketNotFound, ErrOperationTimeout and so on); unknown API errors keep
// their S3 error code in the message:
//
//	if errors.Is(err, storage.ErrAccessDenied) {
//		// check QRGEN_S3_ACCESS_KEY_ID / QRGEN_S3_SECRET_KEY
//	}
package s3

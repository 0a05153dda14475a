package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Storage publishes objects to a remote store.
type Storage interface {
	// Put uploads body under key. Size is the body length in bytes, or -1
	// when unknown.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*Object, error)
	// URL returns the public URL of key.
	URL(key string) string
}

// Object describes an uploaded object.
type Object struct {
	Key         string
	Size        int64
	ContentType string
	URL         string
}

// CleanKey strips leading slashes and rejects empty keys and keys with a ".."
// path segment. Dots inside a name, as in "v1..png", are allowed.
func CleanKey(key string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	for seg := range strings.SplitSeq(key, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
		}
	}
	return key, nil
}

// JoinKey joins a prefix and a name with a single slash.
func JoinKey(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	name = strings.TrimLeft(name, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// PutFile uploads the local file at filePath under key. The content type is
// derived from the file extension.
func PutFile(ctx context.Context, s Storage, key, filePath string) (*Object, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToOpenFile, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(filePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return s.Put(ctx, key, f, info.Size(), contentType)
}

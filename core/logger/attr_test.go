package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/urlqr/core/logger"
)

func TestStringAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{"request id", logger.RequestID("req-123"), "request_id", "req-123"},
		{"component", logger.Component("generator"), "component", "generator"},
		{"action", logger.Action("publish"), "action", "publish"},
		{"payload", logger.Payload("https://example.com"), "payload", "https://example.com"},
		{"path", logger.Path("/tmp/qr.png"), "path", "/tmp/qr.png"},
		{"url", logger.URL("https://bucket.s3.us-east-1.amazonaws.com/qr.png"), "url", "https://bucket.s3.us-east-1.amazonaws.com/qr.png"},
		{"error correction", logger.ErrorCorrection("M"), "ec_level", "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantKey, tt.attr.Key)
			assert.Equal(t, tt.wantVal, tt.attr.Value.String())
		})
	}
}

func TestEmptyInputDropsAttr(t *testing.T) {
	t.Parallel()

	for name, attr := range map[string]slog.Attr{
		"error":            logger.Error(nil),
		"request id":       logger.RequestID(""),
		"component":        logger.Component(""),
		"action":           logger.Action(""),
		"path":             logger.Path(""),
		"url":              logger.URL(""),
		"error correction": logger.ErrorCorrection(""),
		"key":              logger.Key("k", nil),
	} {
		assert.True(t, attr.Equal(slog.Attr{}), name)
	}
}

func TestPayloadKeepsEmptyValue(t *testing.T) {
	t.Parallel()
	attr := logger.Payload("")
	assert.Equal(t, "payload", attr.Key)
	assert.Empty(t, attr.Value.String())
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	attr := logger.Elapsed(time.Now().Add(-50 * time.Millisecond))
	assert.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), 50*time.Millisecond)
}

func TestDimensions(t *testing.T) {
	t.Parallel()
	attr := logger.Dimensions(330, 250)
	require.Equal(t, "dimensions", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "width", g[0].Key)
	assert.Equal(t, int64(330), g[0].Value.Int64())
	assert.Equal(t, "height", g[1].Key)
	assert.Equal(t, int64(250), g[1].Value.Int64())
}

func TestNumericAttrs(t *testing.T) {
	t.Parallel()

	modules := logger.Modules(25)
	assert.Equal(t, "modules", modules.Key)
	assert.Equal(t, int64(25), modules.Value.Int64())

	size := logger.Size(1024)
	assert.Equal(t, "size", size.Key)
	assert.Equal(t, int64(1024), size.Value.Int64())
}

func TestKey(t *testing.T) {
	t.Parallel()
	attr := logger.Key("bucket", "qr-codes")
	assert.Equal(t, "bucket", attr.Key)
	assert.Equal(t, "qr-codes", attr.Value.Any())
}

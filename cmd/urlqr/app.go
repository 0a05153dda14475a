package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/urlqr"
	"github.com/dmitrymomot/urlqr/core/logger"
	"github.com/dmitrymomot/urlqr/core/storage"
	"github.com/dmitrymomot/urlqr/integration/storage/s3"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// storageFactory builds the publisher for S3Config.
type storageFactory func(ctx context.Context, cfg S3Config) (storage.Storage, error)

type app struct {
	cfg        Config
	stdout     io.Writer
	stderr     io.Writer
	newStorage storageFactory
}

func newS3Storage(ctx context.Context, cfg S3Config) (storage.Storage, error) {
	store, err := s3.New(ctx, s3.Config{
		Bucket:         cfg.Bucket,
		Region:         cfg.Region,
		AccessKeyID:    cfg.AccessKeyID,
		SecretKey:      cfg.SecretKey,
		Endpoint:       cfg.Endpoint,
		BaseURL:        cfg.BaseURL,
		ForcePathStyle: cfg.ForcePathStyle,
		CacheControl:   cfg.CacheControl,
	}, s3.WithUploadTimeout(cfg.UploadTimeout))
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (a *app) logger() *slog.Logger {
	level := logger.ParseLevel(a.cfg.LogLevel)

	var opts []logger.Option
	if strings.EqualFold(a.cfg.LogFormat, "json") {
		opts = append(opts, logger.WithProduction("urlqr"))
	} else {
		opts = append(opts, logger.WithTextFormatter(), logger.WithAttr(slog.String("service", "urlqr")))
	}

	return logger.New(append(opts,
		logger.WithOutput(a.stderr),
		logger.WithLevel(level),
		logger.WithHandlerOptions(&slog.HandlerOptions{AddSource: level <= slog.LevelDebug}),
	)...)
}

func (a *app) run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("urlqr", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Generate a QR code PNG from a URL.")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Usage: urlqr --url https://example.com [flags]")
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}

	rawURL := fs.String("url", "", "URL to encode (e.g., https://example.com)")
	out := fs.String("out", a.cfg.Out, "Output PNG filename; the extension is always .png")
	boxSize := fs.Int("box-size", a.cfg.BoxSize, "Pixel size of QR modules")
	border := fs.Int("border", a.cfg.Border, "Border width in modules")
	fill := fs.String("fill", a.cfg.Fill, "Foreground color in hex")
	back := fs.String("back", a.cfg.Back, "Background color in hex")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintln(a.stdout, version)
		return exitOK
	}

	if *rawURL == "" {
		fmt.Fprintln(a.stderr, "error: --url is required")
		fs.Usage()
		return exitUsage
	}

	log := a.logger().With(logger.RequestID(uuid.NewString()))
	gen := urlqr.NewGenerator(urlqr.WithLogger(log))

	path, err := gen.Generate(urlqr.NewRequest(*rawURL,
		urlqr.WithOutputPath(*out),
		urlqr.WithModuleSize(*boxSize),
		urlqr.WithBorderWidth(*border),
		urlqr.WithFillColor(*fill),
		urlqr.WithBackColor(*back),
	))
	if err != nil {
		log.Debug("generation failed", logger.Error(err))
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitError
	}

	fmt.Fprintf(a.stdout, "QR code saved to: %s\n", path)

	if !a.cfg.S3.Enabled() {
		return exitOK
	}

	obj, err := a.publish(ctx, path)
	if err != nil {
		log.Error("publish failed", logger.Action("publish"), logger.Path(path), logger.Error(err))
		fmt.Fprintf(a.stderr, "error: publish %s: %v\n", path, err)
		return exitError
	}

	log.Info("qr code published",
		logger.Action("publish"),
		logger.Key("bucket", a.cfg.S3.Bucket),
		logger.Path(path),
		logger.URL(obj.URL),
		logger.Size(obj.Size),
	)
	fmt.Fprintf(a.stdout, "QR code published to: %s\n", obj.URL)
	return exitOK
}

func (a *app) publish(ctx context.Context, path string) (*storage.Object, error) {
	factory := a.newStorage
	if factory == nil {
		factory = newS3Storage
	}

	store, err := factory(ctx, a.cfg.S3)
	if err != nil {
		return nil, err
	}

	key := storage.JoinKey(a.cfg.S3.Prefix, filepath.Base(path))
	return storage.PutFile(ctx, store, key, path)
}

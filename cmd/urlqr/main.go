// Command urlqr generates a QR code PNG from a URL.
//
//	urlqr --url https://example.com --out qr_output.png --box-size 10 --border 4 --fill '#000000' --back '#FFFFFF'
//
// Defaults can be set through QRGEN_* environment variables or a .env file.
// When QRGEN_S3_BUCKET is set the saved image is also uploaded to S3.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/urlqr/core/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitError)
	}

	a := &app{
		cfg:        cfg,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		newStorage: newS3Storage,
	}
	code := a.run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

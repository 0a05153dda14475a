// Package logger provides structured logging utilities built on Go's standard
// slog package: a small factory with functional options and a set of
// attribute helpers used across the generator and the CLI.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/urlqr/core/logger"
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithJSONFormatter(),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("qr code saved",
//		logger.Component("generator"),
//		logger.Payload("https://example.com"),
//		logger.Path("/tmp/qr_output.png"),
//		logger.Dimensions(330, 330),
//	)
//
// # Environment Presets
//
//	dev := logger.New(logger.WithDevelopment("urlqr"))  // text, debug
//	prod := logger.New(logger.WithProduction("urlqr")) // JSON, info
//
// # Attribute Helpers
//
// Helpers follow the empty Attr pattern: nil errors, nil values and empty
// identifiers produce slog.Attr{}, which slog drops, so call sites never need
// nil checks:
//
//	log.Error("generation failed", logger.Error(err), logger.RequestID(id))
//
// # Testing
//
// Capture output with WithOutput and a bytes.Buffer, or use Nop to silence a
// component entirely.
package logger

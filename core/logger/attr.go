package logger

import (
	"log/slog"
	"time"
)

// Helpers return an empty slog.Attr for nil or empty input. slog drops empty
// attributes, so call sites can pass them unconditionally.

// Error records err under "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Elapsed records the time since start under "elapsed".
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// RequestID tags a single CLI invocation.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component names the emitting part of the program.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Action names the step being performed, e.g. "publish".
func Action(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("action", name)
}

// Payload records the content encoded into the symbol.
func Payload(s string) slog.Attr {
	return slog.String("payload", s)
}

// Path records a filesystem path.
func Path(p string) slog.Attr {
	if p == "" {
		return slog.Attr{}
	}
	return slog.String("path", p)
}

// URL records a public location of a published object.
func URL(u string) slog.Attr {
	if u == "" {
		return slog.Attr{}
	}
	return slog.String("url", u)
}

// Modules records the symbol edge length in modules, quiet zone excluded.
func Modules(n int) slog.Attr {
	return slog.Int("modules", n)
}

// ErrorCorrection records the symbol error correction level (L, M, Q or H).
func ErrorCorrection(level string) slog.Attr {
	if level == "" {
		return slog.Attr{}
	}
	return slog.String("ec_level", level)
}

// Dimensions groups image width and height in pixels.
func Dimensions(width, height int) slog.Attr {
	return slog.Group("dimensions", slog.Int("width", width), slog.Int("height", height))
}

// Size records a byte count under "size".
func Size(n int64) slog.Attr {
	return slog.Int64("size", n)
}

// Key records an arbitrary value. Nil values are dropped.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

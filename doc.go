// Package urlqr turns a URL into a PNG file containing a scannable QR code.
//
// A Request carries the payload and the visual parameters. Generate validates
// it, encodes the payload at medium error correction with the smallest symbol
// version that fits, renders the module grid and writes a PNG:
//
//	req := urlqr.NewRequest("https://example.com",
//		urlqr.WithModuleSize(8),
//		urlqr.WithBorderWidth(2),
//		urlqr.WithFillColor("#1e1e1e"),
//		urlqr.WithOutputPath("out/site.jpg"), // written as out/site.png
//	)
//
//	path, err := urlqr.Generate(req)
//	switch {
//	case errors.Is(err, urlqr.ErrInvalidPayload), errors.Is(err, urlqr.ErrInvalidColor):
//		// bad input, nothing was encoded or written
//	case errors.Is(err, urlqr.ErrPayloadTooLarge):
//		// URL does not fit a version 40 symbol
//	case errors.Is(err, urlqr.ErrWriteFailure):
//		// filesystem or rendering failure
//	}
//
// The output extension is always replaced with .png, whatever the caller
// asked for.
//
// # Collaborators
//
// Encoding and rendering sit behind qrcode.Encoder and qrcode.Renderer; a
// Generator built with WithEncoder and WithRenderer can use fakes in tests.
//
// # Concurrency
//
// Requests are plain values and Generator keeps no per-request state, so
// concurrent calls do not interfere. Two calls writing the same path race and
// the last writer wins.
package urlqr

// Package qrcode encodes content into QR module grids and rasterizes them.
//
// The package is split along two capability boundaries so callers can swap
// either side:
//
//   - Encoder turns a string into a Grid, the square module matrix of a QR
//     symbol. SymbolEncoder uses github.com/skip2/go-qrcode and always picks
//     the smallest symbol version that holds the content.
//   - Renderer turns a Grid into an image.Image. ImageRenderer paints one pixel
//     per module on a two-color palette and scales it up with
//     golang.org/x/image/draw's nearest-neighbour scaler.
//
// # Usage
//
// Encode and render with explicit options:
//
//	grid, err := qrcode.NewEncoder().Encode("https://example.com", qrcode.Medium)
//	if err != nil {
//		return err
//	}
//
//	fill, _ := qrcode.ParseHexColor("#1e1e1e")
//	back, _ := qrcode.ParseHexColor("#FFF")
//
//	img, err := qrcode.NewRenderer().Render(grid, qrcode.RenderOptions{
//		ModuleSize: 10,
//		Border:     4,
//		Fill:       fill,
//		Back:       back,
//	})
//	if err != nil {
//		return err
//	}
//
//	return qrcode.EncodePNG(w, img)
//
// Generate PNG bytes or a data URI in one call:
//
//	pngBytes, err := qrcode.Generate("https://example.com", 256)
//
//	dataURI, err := qrcode.GenerateBase64Image("https://example.com", 256)
//	fmt.Printf(`<img src="%s" alt="QR Code">`, dataURI)
//
// # Error Correction Level
//
// Four levels are available. Medium recovers from ~15% damage and is what the
// convenience functions use.
//
// # Image Size
//
// A rendered image is (grid size + 2 * border) * module size pixels per edge.
// Version 1 symbols are 21 modules wide and each version adds 4, up to 177
// modules at version 40. At medium error correction the largest symbol holds
// 2331 bytes of binary content; longer content fails with ErrContentTooLong.
//
// Output is deterministic: the same content and level always produce the same
// grid and the same pixels.
package qrcode

// Package validator provides the input checks that gate QR code generation.
//
// Two kinds of API are exposed. Predicates (IsURL, IsHexColor) are total,
// side-effect-free functions that report whether a value has the expected
// shape; they never panic and never return errors. Rules (URL, HexColor,
// Positive, NonNegative) wrap the same checks together with a field name and a
// translatable message, and Apply collects every failing rule into
// ValidationErrors.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/urlqr/core/validator"
//
//	if !validator.IsURL("https://example.com") {
//		// reject
//	}
//
//	err := validator.Apply(
//		validator.HexColor("fill_color", "#000"),
//		validator.HexColor("back_color", "blue"),
//	)
//	if err != nil {
//		var verrs validator.ValidationErrors
//		if errors.As(err, &verrs) {
//			for _, e := range verrs {
//				fmt.Println(e.Field, e.Message)
//			}
//		}
//	}
//
// # URL Shape
//
// IsURL is a shape check, not a reachability check. The input is trimmed and
// parsed with net/url; it passes only when the scheme is exactly "http" or
// "https" (lowercase) and a host is present. Hosts are not resolved.
//
// # Colors
//
// IsHexColor accepts "#" followed by exactly three or six hexadecimal digits.
// Named colors, rgb() syntax and alpha channels are rejected.
package validator

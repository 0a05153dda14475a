package validator

import (
	"net/url"
	"strings"

	"github.com/dmitrymomot/urlqr/pkg/qrcode"
)

// IsURL reports whether s is an absolute http or https URL with a host.
// Scheme matching is case-sensitive; malformed input yields false.
func IsURL(s string) bool {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	// url.Parse lowercases the scheme, so compare against the raw input.
	if !strings.HasPrefix(s, u.Scheme+":") {
		return false
	}
	return u.Host != ""
}

// IsHexColor reports whether s is a #rgb or #rrggbb hex color, using the same
// grammar qrcode.ParseHexColor accepts.
func IsHexColor(s string) bool {
	return qrcode.HexColorPattern.MatchString(s)
}

package validator

import (
	"fmt"
)

// URL requires value to be an http or https URL with a host.
func URL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsURL(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("invalid URL %q, expected http or https with a host (e.g. https://example.com)", value),
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// HexColor requires value to be a #rgb or #rrggbb color.
func HexColor(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsHexColor(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("invalid color %q, must be hex like #000000 or #FFF", value),
			TranslationKey: "validation.hex_color",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// Positive requires n > 0.
func Positive(field string, n int) Rule {
	return Rule{
		Check: func() bool {
			return n > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be positive, got %d", n),
			TranslationKey: "validation.positive",
			TranslationValues: map[string]any{
				"field": field,
				"value": n,
			},
		},
	}
}

// NonNegative requires n >= 0.
func NonNegative(field string, n int) Rule {
	return Rule{
		Check: func() bool {
			return n >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not be negative, got %d", n),
			TranslationKey: "validation.non_negative",
			TranslationValues: map[string]any{
				"field": field,
				"value": n,
			},
		},
	}
}

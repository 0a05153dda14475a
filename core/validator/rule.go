package validator

import (
	"strings"
)

// Rule pairs a deferred check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// ValidationError describes a single failed rule.
type ValidationError struct {
	Field             string         `json:"field"`
	Message           string         `json:"message"`
	TranslationKey    string         `json:"translation_key"`
	TranslationValues map[string]any `json:"translation_values,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors is a list of failed rules. It implements error.
type ValidationErrors []ValidationError

// Error joins all messages in rule order.
func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return strings.Join(msgs, "; ")
}

// Add appends a validation error.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// IsEmpty reports whether no errors were collected.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Apply evaluates every rule and returns ValidationErrors for the failing ones,
// or nil when all rules pass. Rules with a nil Check are treated as passing.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if rule.Check == nil || rule.Check() {
			continue
		}
		errs.Add(rule.Error)
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

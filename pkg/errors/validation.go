package errors

import (
	"strings"
	"unicode"
)

// maxTextLength bounds the glyph text a settings snapshot may carry.
const maxTextLength = 512

// ValidateText validates the free text placed by a sketch.
//
// The rules are intentionally conservative:
//   - No empty text
//   - No control characters (newlines included)
//   - Maximum length of 512 characters
func ValidateText(field, text string) error {
	if text == "" {
		return New(ErrCodeInvalidSettings, "%s cannot be empty", field)
	}
	if len([]rune(text)) > maxTextLength {
		return New(ErrCodeInvalidSettings, "%s too long (max %d characters)", field, maxTextLength)
	}
	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSettings, "%s contains control characters", field)
		}
	}
	return nil
}

// ValidatePositive rejects zero and negative numeric settings.
func ValidatePositive(field string, v float64) error {
	if !(v > 0) {
		return New(ErrCodeInvalidSettings, "%s must be positive, got %v", field, v)
	}
	return nil
}

// ValidateRange rejects numeric settings outside [lo, hi].
func ValidateRange(field string, v, lo, hi float64) error {
	if v < lo || v > hi || v != v {
		return New(ErrCodeInvalidSettings, "%s must be within [%v, %v], got %v", field, lo, hi, v)
	}
	return nil
}

// ValidateOneOf rejects enum settings outside the allowed set.
func ValidateOneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(ErrCodeInvalidSettings, "invalid %s: %q (must be one of %s)", field, value, strings.Join(allowed, ", "))
}

package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9 ]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a free-text ingredient or item name for comparison.
// Lower-cases, strips everything outside [a-z0-9 ], collapses whitespace
// runs to a single space and trims. Total and idempotent.
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	result := strings.ToLower(name)
	// Punctuation becomes a space so "chicken-breast" and "chicken breast"
	// normalize to the same string, then runs collapse to one space.
	result = nonAlphanumericRegex.ReplaceAllString(result, " ")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

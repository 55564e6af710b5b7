package handler

import (
	"regexp"
	"strings"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9-]+$`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// NormalizeSlug lowercases the candidate and collapses whitespace runs into
// single hyphens. Idempotent: normalizing a normalized slug is a no-op.
func NormalizeSlug(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return whitespaceRuns.ReplaceAllString(s, "-")
}

// ValidateSlug reports whether a normalized slug is non-empty and uses only
// lowercase alphanumerics and hyphens.
func ValidateSlug(s string) bool {
	return s != "" && slugPattern.MatchString(s)
}

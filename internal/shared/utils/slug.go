package utils

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe identifier from a title.
// Lowercase, runs of anything outside [a-z0-9] become a single hyphen,
// leading/trailing hyphens are trimmed. Idempotent.
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)
	hyphenated := nonSlugChars.ReplaceAllString(lower, "-")
	normalized := hyphenRuns.ReplaceAllString(hyphenated, "-")
	return strings.Trim(normalized, "-")
}

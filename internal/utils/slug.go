// internal/utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9 -]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)

	slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Slugify derives a URL slug from a display name: lowercase, drop everything
// outside [a-z0-9 -], whitespace to hyphens, collapsed and trimmed.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(strings.TrimSpace(slug), "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// IsValidSlug reports whether s is a non-empty normalized slug.
func IsValidSlug(s string) bool {
	if !slugPattern.MatchString(s) {
		return false
	}
	return !strings.Contains(s, "--") && !strings.HasPrefix(s, "-") && !strings.HasSuffix(s, "-")
}

package lib

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugDashes       = regexp.MustCompile(`-+`)
)

// Slugify lowercases input, drops everything except letters, digits, spaces and
// hyphens, then turns whitespace runs into a single hyphen.
// "Blue Pearl!!" -> "blue-pearl"
func Slugify(input string) string {
	s := strings.TrimSpace(strings.ToLower(input))
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	return slugDashes.ReplaceAllString(s, "-")
}

package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidUUID checks the canonical 8-4-4-4-12 hex form, in either case.
// Only the shape is checked; version and variant bits are not.
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(uuid)
}

// CharCount counts characters, not bytes.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// IsBlank reports whether s is empty after trimming surrounding whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ExceedsLength reports whether s has more than max characters.
func ExceedsLength(s string, max int) bool {
	return CharCount(s) > max
}

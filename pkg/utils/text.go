package utils

import (
	"strings"
	"unicode"
)

// TrimInput trims leading/trailing whitespace and collapses internal runs of
// whitespace into single spaces. All user-entered text passes through here
// before validation.
func TrimInput(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// ContainsControlChars reports whether s contains any control characters
func ContainsControlChars(s string) bool {
	return strings.ContainsFunc(s, unicode.IsControl)
}

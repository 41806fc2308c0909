// Package stringutil provides utility functions for working with strings.
package stringutil

import "unicode/utf8"

// Truncate shortens s to at most maxLen runes, ending in "..." when it was
// cut. If maxLen is 3 or less, the string is cut without "...".
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// DisplayWidth returns the number of runes s occupies once ANSI escape
// sequences are removed. Rune count stands in for display width; wide and
// combining characters are not measured separately.
func DisplayWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

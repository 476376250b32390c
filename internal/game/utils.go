package game

import (
	"strings"
	"unicode/utf8"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// trimLastRune removes the final rune, not the final byte, so multi-byte
// characters delete cleanly.
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// flattenMessage collapses whitespace runs, line breaks included, into
// single spaces. The message model is a single line.
func flattenMessage(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

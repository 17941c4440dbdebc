package util

import (
	"strings"
	"unicode"
)

// WordSafeTrim returns a version of s that does not exceed limit runes by
// cutting at the last whitespace boundary before the limit. If no boundary
// exists, falls back to a hard cut. Trailing whitespace is removed.
func WordSafeTrim(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	boundary := -1
	for i := 0; i < limit && i < len(r); i++ {
		if unicode.IsSpace(r[i]) {
			boundary = i
		}
	}
	if boundary >= 0 {
		return strings.TrimSpace(string(r[:boundary]))
	}
	return string(r[:limit])
}

// HardTruncate returns s cut to at most limit runes, with an ellipsis when
// anything was dropped.
func HardTruncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}

// RuneLen returns the length of s in runes (Unicode code points).
func RuneLen(s string) int {
	return len([]rune(s))
}

package util

import (
	"time"
)

// Truncate shortens a string to at most max runes, ending in an ellipsis
// when anything was cut off.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// FormatTime renders a timestamp the way card details display it
func FormatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

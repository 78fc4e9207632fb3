package utils

import (
	"strings"
	"time"
)

// DateLayout is the storage format for all dates (ISO calendar date).
const DateLayout = "2006-01-02"

// ParseDate parses a stored date cell. The second return value is false
// for empty or malformed values.
func ParseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a time as a storage date cell.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// InMonth reports whether a stored date cell falls within the given year and
// month. Malformed dates never match.
func InMonth(value string, year int, month time.Month) bool {
	t, ok := ParseDate(value)
	if !ok {
		return false
	}
	return t.Year() == year && t.Month() == month
}

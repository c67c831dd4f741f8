package domain

import (
	"time"
)

// Date layouts accepted from the backend. Program date fields arrive either
// as a simple calendar date or as a full timestamp; the simple form is tried
// first because it is what the program endpoints normally emit.
const (
	simpleDateLayout    = "2006-01-02"
	bareTimestampLayout = "2006-01-02T15:04:05"
)

// ParseFlexibleDate parses a backend date string, trying the simple
// yyyy-MM-dd form first and falling back to RFC 3339 and then a
// zone-less timestamp. Returns false when no layout matches.
func ParseFlexibleDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(simpleDateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(bareTimestampLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// startOfDay truncates t to midnight in t's location. Day-granularity
// comparisons (scheduling rules) go through this so that wall-clock time
// never affects the outcome.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

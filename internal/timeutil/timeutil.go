// Package timeutil produces and validates the canonical timestamp
// format used throughout the API: ISO-8601, whole-second precision,
// always carrying an explicit numeric offset (+00:00, never Z).
package timeutil

import (
	"errors"
	"strings"
	"time"
)

const canonicalLayout = "2006-01-02T15:04:05-07:00"

var (
	ErrEmpty           = errors.New("'timestamp' must not be empty")
	ErrInvalidFormat   = errors.New("invalid ISO format for 'timestamp'")
	ErrMissingTimezone = errors.New("'timestamp' must include a timezone (e.g. 'Z' or '+00:00')")
)

// layouts that carry an explicit offset. The fraction is optional, so
// each form covers both "15:04:05" and "15:04:05.123".
var offsetLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04-07:00",
	"2006-01-02 15:04-07:00",
}

// layouts that parse fine but are timezone-naive; matching one of these
// is rejected rather than silently assuming UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Now returns the current UTC time in canonical form.
func Now() string {
	return time.Now().UTC().Truncate(time.Second).Format(canonicalLayout)
}

// Normalize validates s and rewrites it to canonical form. A trailing Z
// is shorthand for +00:00; an offset-bearing input keeps its offset.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Truncate(time.Second).Format(canonicalLayout), nil
		}
	}
	for _, layout := range naiveLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return "", ErrMissingTimezone
		}
	}
	return "", ErrInvalidFormat
}

// Package timeparse normalizes the heterogeneous timestamp strings found in
// chat exports into a single instant type.
package timeparse

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// layouts is the ordered ladder of known export timestamp formats. The first
// layout that parses wins; later layouts are not tried.
var layouts = []string{
	"Jan 2, 2006 3:04 PM",
	"2006-01-02 15:04:05",
	"2 Jan 2006 15:04",
	"2006-01-02",
}

// Parse converts a timestamp string into a time.Time. The boolean result is
// false when the string matches no known layout and the permissive fallback
// also fails; callers drop such records rather than propagating an error.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	// Last resort: permissive parser, mirroring a generic to-datetime
	// coercion. Exports occasionally carry locale variants the ladder
	// does not cover.
	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}

	return time.Time{}, false
}

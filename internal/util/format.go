package util

import (
	"fmt"
	"strings"
)

// FormatNumber renders a count with thousands separators.
func FormatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, digit)
	}

	return string(result)
}

// HourLabel12 converts an hour-of-day (0-23) into a 12-hour clock label,
// e.g. 0 -> "12 AM", 13 -> "1 PM".
func HourLabel12(h int) string {
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d %s", hour12, suffix)
}

// CollapseWhitespace trims a string and collapses internal whitespace
// runs (including newlines from markup) into single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

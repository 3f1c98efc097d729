package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKnownLayouts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "export 12-hour format",
			input:    "Jan 5, 2023 3:45 PM",
			expected: time.Date(2023, 1, 5, 15, 45, 0, 0, time.UTC),
		},
		{
			name:     "ISO with seconds",
			input:    "2023-01-05 15:45:30",
			expected: time.Date(2023, 1, 5, 15, 45, 30, 0, time.UTC),
		},
		{
			name:     "day first",
			input:    "5 Jan 2023 15:45",
			expected: time.Date(2023, 1, 5, 15, 45, 0, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2023-01-05",
			expected: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace",
			input:    "  2023-01-05  ",
			expected: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			require.True(t, ok)
			assert.True(t, tt.expected.Equal(got), "got %v", got)
		})
	}
}

func TestParseDeterminism(t *testing.T) {
	// The same string must normalize identically on every call.
	first, ok := Parse("Jan 5, 2023 3:45 PM")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := Parse("Jan 5, 2023 3:45 PM")
		require.True(t, ok)
		assert.True(t, first.Equal(again))
	}
}

func TestParseUnparseable(t *testing.T) {
	tests := []string{
		"not a date",
		"",
		"   ",
		"yesterday-ish",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, ok := Parse(input)
			assert.False(t, ok)
		})
	}
}

func TestParsePermissiveFallback(t *testing.T) {
	// Not in the ladder, recovered by the permissive parser.
	got, ok := Parse("2023/01/05 15:45")
	assert.True(t, ok)
	assert.Equal(t, 2023, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 5, got.Day())
}

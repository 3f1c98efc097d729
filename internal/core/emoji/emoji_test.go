package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "no emoji",
			text:     "just plain text",
			expected: nil,
		},
		{
			name:     "single emoji",
			text:     "hello 😀 world",
			expected: []string{"😀"},
		},
		{
			name:     "separated emojis are distinct runs",
			text:     "😀 and 🚀",
			expected: []string{"😀", "🚀"},
		},
		{
			name:     "adjacent emojis form one run",
			text:     "😀😀🚀",
			expected: []string{"😀😀🚀"},
		},
		{
			name:     "dingbats and misc symbols ranges",
			text:     "check ✈ and ☀",
			expected: []string{"✈", "☀"},
		},
		{
			name:     "emoji at start and end",
			text:     "🎉party🎉",
			expected: []string{"🎉", "🎉"},
		},
		{
			name:     "empty string",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.text))
		})
	}
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange('😀'))  // U+1F600 emoticons
	assert.True(t, InRange('🌀'))  // U+1F300 pictographs
	assert.True(t, InRange('🚀'))  // U+1F680 transport
	assert.True(t, InRange('✂'))  // U+2702 dingbats
	assert.True(t, InRange('☔'))  // U+2614 misc symbols
	assert.False(t, InRange('a'))
	assert.False(t, InRange('你'))
	assert.False(t, InRange(' '))
}

func TestExtractZWJSequenceIsOneRun(t *testing.T) {
	// A family ZWJ sequence: the joiners are out of range, so the logical
	// emoji splits into in-range runs. Documented approximation.
	runs := Extract("👨‍👩‍👧")
	assert.Equal(t, []string{"👨", "👩", "👧"}, runs)
}

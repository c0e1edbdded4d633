package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{
			name:     "shorter than max",
			input:    "/pricing",
			max:      255,
			expected: "/pricing",
		},
		{
			name:     "exactly max",
			input:    "abcd",
			max:      4,
			expected: "abcd",
		},
		{
			name:     "longer than max",
			input:    strings.Repeat("a", 300),
			max:      255,
			expected: strings.Repeat("a", 255),
		},
		{
			name:     "language code cap",
			input:    "en-US",
			max:      2,
			expected: "en",
		},
		{
			name:     "multi-byte runes",
			input:    "日本語テスト",
			max:      3,
			expected: "日本語",
		},
		{
			name:     "zero max",
			input:    "anything",
			max:      0,
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			max:      255,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.max))
		})
	}
}

func TestTruncate_Length(t *testing.T) {
	long := strings.Repeat("x", 1000)
	assert.Len(t, []rune(Truncate(long, 255)), 255)
}

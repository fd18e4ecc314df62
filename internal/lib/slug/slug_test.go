package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "Simple title",
			title:    "Almaty Campus Tour",
			expected: "almaty-campus-tour",
		},
		{
			name:     "Punctuation is dropped",
			title:    "Astana IT: Tour #3!",
			expected: "astana-it-tour-3",
		},
		{
			name:     "Whitespace runs collapse",
			title:    "  Almaty   Campus \t Tour  ",
			expected: "almaty-campus-tour",
		},
		{
			name:     "Cyrillic letters survive",
			title:    "Тур по вузам Алматы",
			expected: "тур-по-вузам-алматы",
		},
		{
			name:     "Hyphens do not stack",
			title:    "Almaty - Campus - Tour",
			expected: "almaty-campus-tour",
		},
		{
			name:     "Empty input",
			title:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Make(tc.title))
		})
	}
}

func TestWithTimestamp(t *testing.T) {
	t.Parallel()

	out := WithTimestamp("almaty-campus-tour")

	assert.True(t, strings.HasPrefix(out, "almaty-campus-tour-"))
	assert.Greater(t, len(out), len("almaty-campus-tour-"))
}

package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "Formatted Kazakh number",
			raw:      "+7 (701) 555-11-22",
			expected: "77015551122",
		},
		{
			name:     "Already bare",
			raw:      "77015551122",
			expected: "77015551122",
		},
		{
			name:     "Empty",
			raw:      "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Normalize(tc.raw))
		})
	}
}

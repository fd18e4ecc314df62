// Package slug derives URL-safe identifiers from tour titles.
package slug

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Make lowercases the title, turns whitespace runs into single hyphens,
// drops everything that is not a word character and trims the edges.
func Make(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case unicode.IsSpace(r):
			b.WriteByte('-')
		case r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}

	return strings.Trim(out, "-")
}

// WithTimestamp appends a millisecond timestamp suffix, used to break
// slug collisions.
func WithTimestamp(s string) string {
	return s + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Package phone normalizes phone numbers to bare digits without "+",
// spaces, dashes or parentheses. Student records store phones in this
// form; application phones are kept as the visitor typed them and are
// normalized only at the WhatsApp send.
package phone

import "strings"

func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '+', '(', ')':
			return -1
		}
		return r
	}, raw)
}

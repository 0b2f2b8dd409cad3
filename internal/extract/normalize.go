package extract

import (
	"strings"
	"unicode"
)

// Normalize strips the control characters optical recognition tends to leave
// behind (ASCII control plus the C1 range), collapses whitespace runs to a
// single space, and trims both ends. Every pattern in this package matches
// against normalized text only.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case r < 0x20 || (r >= 0x7F && r <= 0x9F):
			// control character, drop
		default:
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

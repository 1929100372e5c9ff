package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize removes runes that must never reach the pipeline:
// - NUL (0x00)
// - ASCII controls except '\n', '\r', '\t'
// - DEL (0x7F)
// - C1 controls U+0080..U+009F
// It also drops invalid UTF-8 bytes.
// Fast path returns s unchanged when no cleaning is needed
func Sanitize(s string) string {
	if s == "" {
		return s
	}

	n := len(s)
	i := 0
	for i < n {
		r, size := utf8.DecodeRuneInString(s[i:])
		if dropped(r, size) {
			break
		}
		i += size
	}
	if i == n {
		return s
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(s[:i])
	for i < n {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !dropped(r, size) {
			// exact bytes, no re-encode
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func dropped(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return true
	case r < 0x20:
		return r != '\n' && r != '\r' && r != '\t'
	case r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	}
	return false
}

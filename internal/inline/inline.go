// Package inline implements the delimiter-safe token encoding used by the
// dialog persistence format. Control characters and the characters that are
// meaningful inside a persisted string (`#`, `,`, `:`, `|`) are written as
// `#XX` upper-case hex escapes.
package inline

import "strings"

const hexDigits = "0123456789ABCDEF"

func mustEscape(c byte) bool {
	return c < 0x20 || c == '#' || c == ',' || c == ':' || c == '|'
}

// Encode returns s with every delimiter and control byte replaced by its
// `#XX` escape. The result never contains a bare `:` or `|`.
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if mustEscape(c) {
			b.WriteByte('#')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xF])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Decode reverses Encode. A `#` that is not followed by two hex digits is
// kept as literal text rather than rejected; tokens come from untrusted
// storage and a lossy-but-total decode matches the tolerant tier of the
// dialog error model.
func Decode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && i+2 < len(s) {
			hi, okHi := hexVal(s[i+1])
			lo, okLo := hexVal(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

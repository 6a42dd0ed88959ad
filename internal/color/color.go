// Package color holds the opaque color value carried by color-picker
// controls. Only the canonical hex text forms are understood; anything the
// host toolkit does with the value beyond that is its own business.
package color

import "fmt"

// Color is an 8-bit RGBA value.
type Color struct {
	R, G, B, A uint8
}

// Parse reads a `#RGB`, `#RRGGBB` or `#RRGGBBAA` text form. Malformed input
// yields the zero color; declarations come from untrusted scripts and a bad
// color is not worth failing a whole dialog over.
func Parse(s string) Color {
	if len(s) == 0 || s[0] != '#' {
		return Color{}
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		r, okR := nibble(hex[0])
		g, okG := nibble(hex[1])
		b, okB := nibble(hex[2])
		if !okR || !okG || !okB {
			return Color{}
		}
		return Color{R: r * 0x11, G: g * 0x11, B: b * 0x11}
	case 6, 8:
		var parts [4]uint8
		for i := 0; i < len(hex)/2; i++ {
			hi, okHi := nibble(hex[2*i])
			lo, okLo := nibble(hex[2*i+1])
			if !okHi || !okLo {
				return Color{}
			}
			parts[i] = hi<<4 | lo
		}
		return Color{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}
	}
	return Color{}
}

// Hex returns the canonical text form, `#RRGGBB` or `#RRGGBBAA`.
func (c Color) Hex(withAlpha bool) string {
	if withAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func nibble(c byte) (uint8, bool) {
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

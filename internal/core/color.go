package core

import (
	"fmt"
	"strconv"
)

// Color is an opaque 24-bit RGB color.
// It implements image/color.Color so graphical surfaces can use it directly.
type Color struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorBlack      = Color{0x00, 0x00, 0x00}
	ColorWhite      = Color{0xFF, 0xFF, 0xFF}
	ColorPaddle     = Color{0x00, 0xDD, 0xFF}
	ColorGreen      = Color{0x33, 0xFF, 0x66}
	ColorOrange     = Color{0xFF, 0x99, 0x33}
	ColorBackground = Color{0x10, 0x10, 0x1A}
)

// ParseHex parses a "#RRGGBB" (or "RRGGBB") color string.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("core: invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil //#nosec G115 -- masked by uint8 truncation
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level color tables.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA implements image/color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

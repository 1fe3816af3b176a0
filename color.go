package onboard

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("onboard: invalid color")

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (leading '#' optional)
// into an opaque or translucent Color.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := 1.0
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	case 8:
		var a uint8
		if _, err := fmt.Sscanf(h[6:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		alpha = float64(a) / 255
		h = h[:6]
	default:
		return Color{}, fmt.Errorf("%w %q: want #RGB, #RRGGBB or #RRGGBBAA", ErrInvalidColor, s)
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// MustParseHex is like ParseHex but panics on error. Intended for
// package-level color constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#RRGGBB", or "#RRGGBBAA" when not fully opaque.
func (c Color) Hex() string {
	h := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
	if c.A >= 1 {
		return h
	}
	return fmt.Sprintf("%s%02x", h, uint8(clamp01(c.A)*255+0.5))
}

// lerpColor blends a toward b by t in straight RGB space. t == 0 returns a
// exactly and t == 1 returns b exactly.
func lerpColor(a, b Color, t float64) Color {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	c := colorful.Color{R: a.R, G: a.G, B: a.B}.BlendRgb(colorful.Color{R: b.R, G: b.G, B: b.B}, t)
	return Color{R: c.R, G: c.G, B: c.B, A: a.A + (b.A-a.A)*t}
}

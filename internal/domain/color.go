package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a single sRGB color. The zero value is an unset color.
type Color struct {
	c   colorful.Color
	set bool
}

// NewColor wraps a colorful.Color, clamping it into the sRGB gamut.
func NewColor(c colorful.Color) Color {
	return Color{c: c.Clamped(), set: true}
}

// ParseHex parses "#rrggbb", "rrggbb" or "#rgb" in any case.
func ParseHex(s string) (Color, error) {
	h := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if len(h) != 4 && len(h) != 7 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{c: c, set: true}, nil
}

// MustParseHex is ParseHex for literals known to be valid.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHSL builds a color from hue in degrees and saturation/lightness in [0,1].
func FromHSL(h, s, l float64) Color {
	return NewColor(colorful.Hsl(math.Mod(h, 360), s, l))
}

func (c Color) IsZero() bool { return !c.set }

// Hex returns the lowercase "#rrggbb" form, or "" for an unset color.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return c.c.Hex()
}

// HSL returns hue in [0,360) and saturation/lightness in [0,1].
func (c Color) HSL() (h, s, l float64) {
	return c.c.Hsl()
}

// Colorful exposes the underlying value for color math.
func (c Color) Colorful() colorful.Color { return c.c }

func (c Color) String() string { return c.Hex() }

// Equal compares colors by their hex form.
func (c Color) Equal(o Color) bool {
	return c.set == o.set && c.Hex() == o.Hex()
}

// NormalizeHex validates s and returns its canonical lowercase form.
func NormalizeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Quantize rounds c to the nearest 24-bit color, the precision of its hex form.
func (c Color) Quantize() Color {
	if !c.set {
		return c
	}
	q, err := ParseHex(c.Hex())
	if err != nil {
		return c
	}
	return q
}

package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/microcharts/pkg/errors"
)

// Color is a non-premultiplied RGBA color. The zero value is fully
// transparent and is used to mean "not set" for optional colors such as
// label outlines.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Gray        = Color{128, 128, 128, 255}
	LightGray   = Color{211, 211, 211, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" (CSS order, alpha last).
// The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "empty color")
	}
	hex := strings.TrimPrefix(s, "#")

	alpha := uint8(255)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid alpha in %q", s)
		}
		alpha = uint8(a)
		hex = hex[:6]
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseColor is like [ParseColor] but panics on error. It is meant for
// package-level color literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts any [color.Color] to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// ScaleAlpha returns c with its alpha multiplied by f, clamped to [0, 1].
func (c Color) ScaleAlpha(f float64) Color {
	if f <= 0 {
		c.A = 0
		return c
	}
	if f >= 1 {
		return c
	}
	c.A = uint8(float64(c.A)*f + 0.5)
	return c
}

// IsZero reports whether c is the unset (fully transparent black) color.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Opacity returns the alpha channel as a fraction in [0, 1].
func (c Color) Opacity() float64 {
	return float64(c.A) / 255
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func (c Color) Hex() string {
	rgb := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
	if c.A == 255 {
		return rgb
	}
	return fmt.Sprintf("%s%02x", rgb, c.A)
}

// RGB returns the color as "#rrggbb" ignoring alpha, the form SVG fill and
// stroke attributes expect.
func (c Color) RGB() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

package colorspace

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB represents an 8-bit sRGB color triple.
//
// Each component ranges from 0 to 255. RGB is a comparable value type:
// equality is component-wise, and it can be used directly as a map key.
// It is the external currency of the package — palette members, matcher
// queries, and pixel grids all use it.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Lab represents a color in the CIELAB color space (D65 illuminant, 2° observer).
//
// L is lightness, nominally in [0, 100]; A and B are the green-red and
// blue-yellow opponent axes, signed and bounded in practice by the sRGB gamut.
// Lab values are always derived from an RGB color via RGB.Lab, never
// constructed independently by this package's callers.
type Lab struct {
	L float64 `json:"l"` // Lightness (0-100)
	A float64 `json:"a"` // Green-red axis
	B float64 `json:"b"` // Blue-yellow axis
}

// FromColor converts any standard library color.Color to an 8-bit RGB triple.
//
// The color is first normalized to non-premultiplied form, so a translucent
// pixel yields its actual color rather than the darker alpha-scaled one. The
// alpha channel itself is discarded; callers that need to preserve
// transparency must carry it alongside.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ParseHex parses a hex color string like "#FF0000" or "ff0000" into an RGB.
//
// The leading "#" is optional and parsing is case-insensitive. Returns an
// error for anything that is not exactly six hex digits.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 {
		return RGB{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex returns the color in "#RRGGBB" format.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NRGBA returns the color as a non-premultiplied standard library color with
// the given alpha.
func (c RGB) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

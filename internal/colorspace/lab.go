package colorspace

import "math"

// D65 reference white point (2° standard observer).
const (
	whiteX = 0.950489
	whiteY = 1.0
	whiteZ = 1.08884
)

// Lab converts the color to CIELAB via linear CIEXYZ.
//
// The conversion is the standard one for sRGB input: each channel is
// normalized to [0, 1], gamma-expanded to linear light, transformed by the
// sRGB/D65 matrix into XYZ, and finally mapped to L*a*b* relative to the D65
// white point. It is a total function over the 8-bit cube — there are no
// failure modes.
func (c RGB) Lab() Lab {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)

	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// linearize applies the inverse sRGB gamma expansion to a normalized channel.
func linearize(u float64) float64 {
	if u <= 0.04045 {
		return u / 12.92
	}
	return math.Pow((u+0.055)/1.055, 2.4)
}

// labF is the CIE f(t) nonlinearity used by the XYZ to L*a*b* mapping.
func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

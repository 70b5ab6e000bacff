package colorspace

import (
	"fmt"
	"math"
)

// pow25to7 is 25^7, the constant in the CIEDE2000 chroma correction terms.
const pow25to7 = 6103515625.0

// DeltaE returns the CIEDE2000 color difference between two CIELAB colors,
// with the parametric factors K_L = K_C = K_H = 1.
//
// The result is non-negative; zero means the colors are identical. Values
// around 1 correspond roughly to a just-noticeable difference. The formula is
// symmetric for all practical inputs, though exact axis boundaries can produce
// tiny asymmetries from the hue branch conditions.
//
// Grays (zero-chroma colors) are handled explicitly: the hue angle of a color
// with a' = b = 0 is defined as 0, and the hue difference term vanishes when
// either chroma is zero.
func DeltaE(c1, c2 Lab) float64 {
	cab1 := math.Hypot(c1.A, c1.B)
	cab2 := math.Hypot(c2.A, c2.B)
	cabMean := (cab1 + cab2) / 2

	cab7 := math.Pow(cabMean, 7)
	g := 0.5 * (1 - math.Sqrt(cab7/(cab7+pow25to7)))

	a1 := (1 + g) * c1.A
	a2 := (1 + g) * c2.A
	cp1 := math.Hypot(a1, c1.B)
	cp2 := math.Hypot(a2, c2.B)

	hp1 := hueAngle(c1.B, a1)
	hp2 := hueAngle(c2.B, a2)

	dL := c2.L - c1.L
	dC := cp2 - cp1

	// Hue difference with wraparound; undefined (zero) when either color is gray.
	var dhp float64
	switch {
	case cp1*cp2 == 0:
		dhp = 0
	case math.Abs(hp2-hp1) <= 180:
		dhp = hp2 - hp1
	case hp2-hp1 > 180:
		dhp = hp2 - hp1 - 360
	default:
		dhp = hp2 - hp1 + 360
	}
	dH := 2 * math.Sqrt(cp1*cp2) * math.Sin(radians(dhp)/2)

	lMean := (c1.L + c2.L) / 2
	cpMean := (cp1 + cp2) / 2

	// Mean hue, with its own wraparound policy mirroring the difference above.
	var hpMean float64
	switch {
	case cp1*cp2 == 0:
		hpMean = hp1 + hp2
	case math.Abs(hp1-hp2) <= 180:
		hpMean = (hp1 + hp2) / 2
	case hp1+hp2 < 360:
		hpMean = (hp1 + hp2 + 360) / 2
	default:
		hpMean = (hp1 + hp2 - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(radians(hpMean-30)) +
		0.24*math.Cos(radians(2*hpMean)) +
		0.32*math.Cos(radians(3*hpMean+6)) -
		0.20*math.Cos(radians(4*hpMean-63))

	dTheta := 30 * math.Exp(-((hpMean-275)/25)*((hpMean-275)/25))

	cpMean7 := math.Pow(cpMean, 7)
	rc := 2 * math.Sqrt(cpMean7/(cpMean7+pow25to7))
	rt := -math.Sin(radians(2*dTheta)) * rc

	l50 := (lMean - 50) * (lMean - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cpMean
	sh := 1 + 0.015*cpMean*t

	lTerm := dL / sl
	cTerm := dC / sc
	hTerm := dH / sh

	sum := lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm
	if sum < 0 {
		// Floating rounding can push the quadratic form a hair below zero.
		sum = 0
	}
	return math.Sqrt(sum)
}

// hueAngle returns the hue angle of (a', b) in degrees in [0, 360).
// The angle of the origin is defined as 0.
func hueAngle(b, a float64) float64 {
	if b == 0 && a == 0 {
		return 0
	}
	deg := degrees(math.Atan2(b, a))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// degrees converts an atan2 result to degrees. The input must lie in
// [-π, π]; anything else indicates an internal logic defect, so the check is
// a fatal assertion rather than a recoverable error.
func degrees(rad float64) float64 {
	if rad < -math.Pi || rad > math.Pi {
		panic(fmt.Sprintf("colorspace: angle %v out of range [-π, π]", rad))
	}
	return rad * (180 / math.Pi)
}

// radians converts degrees to radians for the standard library trig calls.
func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

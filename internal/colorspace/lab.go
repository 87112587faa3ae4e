package colorspace

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB represents a color with components in the range 0-255.
//
// Components are float64 rather than uint8 because region averages are
// fractional: the mean color of a 3-pixel region is rarely a whole number,
// and rounding before the Lab conversion would lose contrast the slice
// scoring depends on.
type RGB struct {
	R float64 `json:"r"` // Red component (0-255)
	G float64 `json:"g"` // Green component (0-255)
	B float64 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in "#rrggbb" form for reporting and debug output.
func (c RGB) Hex() string {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Clamped().Hex()
}

// Lab represents a color in the simplified perceptual space documented in
// the package comment. Component ranges follow from the formula; no bounds
// are enforced.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// RGBToLab converts an RGB sample to the simplified Lab space.
//
// Each channel is normalized to 0-1, sRGB gamma-linearized, and scaled by
// 100 before the XYZ matrix is applied. Pure black (Y == 0) returns the
// zero Lab value.
func RGBToLab(c RGB) Lab {
	r := linearize(c.R / 255)
	g := linearize(c.G / 255)
	b := linearize(c.B / 255)

	x := 0.4124*r + 0.3576*g + 0.1805*b
	y := 0.2126*r + 0.7152*g + 0.0722*b
	z := 0.0193*r + 0.1192*g + 0.9505*b

	if y == 0 {
		return Lab{}
	}

	sqrtY := math.Sqrt(y)
	return Lab{
		L: 10 * sqrtY,
		A: 17.5 * (1.02*x - y) / sqrtY,
		B: 7 * (y - 0.847*z) / sqrtY,
	}
}

// linearize applies the sRGB gamma expansion to a 0-1 channel value and
// scales the result by 100.
func linearize(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4) * 100
	}
	return c / 12.92 * 100
}

// Distance returns the Euclidean distance between two Lab colors, divided
// by 10. The divisor brings color distances into the same numeric range as
// region entropy values so the two can be mixed with a single weight; it is
// an empirically chosen scale match and must be preserved exactly.
func Distance(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl+da*da+db*db) / 10
}

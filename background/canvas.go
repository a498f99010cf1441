package background

import "strconv"

// Point is a position on the surface in device pixels.
type Point struct {
	X, Y float64
}

// Color is a straight-alpha colour with 8-bit channels and a [0,1] alpha,
// the same shape as a CSS rgba() value.
type Color struct {
	R, G, B uint8
	A       float64
}

// Transparent is rgba(0,0,0,0), what the canvas API calls "transparent".
var Transparent = Color{}

// RGBA builds a Color.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// CSS formats the colour as an rgba() string for the canvas 2D API.
func (c Color) CSS() string {
	return "rgba(" + strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + "," + strconv.FormatFloat(c.A, 'f', -1, 64) + ")"
}

func (Color) paint() {}

// Stop is a gradient colour stop.
type Stop struct {
	Offset float64
	Color  Color
}

// LinearGradient mirrors createLinearGradient(x0, y0, x1, y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

func (LinearGradient) paint() {}

// RadialGradient mirrors createRadialGradient(x0, y0, r0, x1, y1, r1): the
// inner circle (X0, Y0, R0) and the outer circle (X1, Y1, R1).
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []Stop
}

func (RadialGradient) paint() {}

// Glow returns a radial gradient centred on (x, y) fading from c to transparent.
func Glow(x, y, radius float64, c Color) RadialGradient {
	return RadialGradient{
		X0: x, Y0: y, R0: 0,
		X1: x, Y1: y, R1: radius,
		Stops: []Stop{{0, c}, {1, Transparent}},
	}
}

// Paint is a fill style: a Color, LinearGradient or RadialGradient.
type Paint interface {
	paint()
}

// Canvas is the drawing surface an effect paints on. Implementations
// composite every call source-over onto the existing content.
type Canvas interface {
	// Size returns the backing pixel dimensions.
	Size() (width, height int)

	// Resize sets the backing pixel dimensions. Content is not preserved.
	Resize(width, height int)

	// Clear resets every pixel to transparent.
	Clear()

	FillRect(x, y, w, h float64, p Paint)
	FillCircle(x, y, r float64, c Color)
	Line(x1, y1, x2, y2, width float64, c Color)

	// FillPolygon fills the closed polygon through pts.
	FillPolygon(pts []Point, p Paint)

	// PixelData returns the surface as interleaved RGBA bytes, row-major.
	// The slice may alias the surface; pass it back to PutPixelData.
	PixelData() []uint8
	PutPixelData(data []uint8)
}

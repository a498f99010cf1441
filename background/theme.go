package background

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// hex parses a #rrggbb theme colour. Theme colours are literals, so a
// malformed one is a programming error.
func hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("background: bad theme colour " + s + ": " + err.Error())
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: 1}
}

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Surface fills
	DarkBackground  Color
	LightBackground Color

	// Warm accent used by particles, glows and dots
	Accent Color

	// Constellation
	StarColor     Color
	StarLinkColor Color

	// Wave layers, back to front
	WaveColors [3]Color

	// Aurora bands, top to bottom
	AuroraColors [3]Color

	// Gradient flow
	GradientWarm  Color
	GradientShade Color
	GradientEmber Color

	// Light gradient
	PaperStart Color
	PaperMid   Color
	PaperEnd   Color
	MistBlue   Color

	// Light dots
	GridColor Color

	// Spectrum bars
	BarColor Color

	// Line widths
	StarPointerLineWidth float64
	StarLinkLineWidth    float64
	ParticleLineWidth    float64
	GridLineWidth        float64
}{
	DarkBackground:  hex("#030303"),
	LightBackground: hex("#fafafa"),

	Accent: hex("#b48f5f"), // rgb(180, 143, 95)

	StarColor:     hex("#ffffff"),
	StarLinkColor: hex("#646478"), // rgb(100, 100, 120)

	WaveColors: [3]Color{
		hex("#b48f5f"), // rgb(180, 143, 95)
		hex("#967850"), // rgb(150, 120, 80)
		hex("#c8a064"), // rgb(200, 160, 100)
	},

	AuroraColors: [3]Color{
		hex("#64503c"), // rgb(100, 80, 60)
		hex("#506450"), // rgb(80, 100, 80)
		hex("#3c5064"), // rgb(60, 80, 100)
	},

	GradientWarm:  hex("#3c2814"), // rgb(60, 40, 20)
	GradientShade: hex("#140f0a"), // rgb(20, 15, 10)
	GradientEmber: hex("#50321e"), // rgb(80, 50, 30)

	PaperStart: hex("#f8f6f3"),
	PaperMid:   hex("#faf9f7"),
	PaperEnd:   hex("#f5f3f0"),
	MistBlue:   hex("#6482a0"), // rgb(100, 130, 160)

	GridColor: hex("#000000").WithAlpha(0.03),

	BarColor: hex("#b48f5f"),

	StarPointerLineWidth: 0.5,
	StarLinkLineWidth:    0.3,
	ParticleLineWidth:    1,
	GridLineWidth:        1,
}

// Background returns the base fill for the light or dark mode.
func Background(light bool) Color {
	if light {
		return Theme.LightBackground
	}
	return Theme.DarkBackground
}

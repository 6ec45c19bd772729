package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Predefined colors
var (
	Black      = colorful.Color{}
	White      = colorful.Color{R: 1, G: 1, B: 1}
	Background = colorful.Color{R: 0.02, G: 0.02, B: 0.05}
	TextDim    = colorful.Color{R: 0.45, G: 0.45, B: 0.5}
	TextNormal = colorful.Color{R: 0.85, G: 0.85, B: 0.88}
	TextAccent = colorful.Color{R: 1, G: 0.8, B: 0.2}
	PanelBg    = colorful.Color{R: 0.06, G: 0.06, B: 0.1}
	OrbitBase  = colorful.Color{R: 1, G: 1, B: 1}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func Blend(dst, src colorful.Color, alpha float64) colorful.Color {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return dst.BlendRgb(src, alpha)
}

// Add performs additive blend with clamping
func Add(dst, src colorful.Color) colorful.Color {
	return colorful.Color{R: dst.R + src.R, G: dst.G + src.G, B: dst.B + src.B}.Clamped()
}

// Max returns per-channel maximum
func Max(dst, src colorful.Color) colorful.Color {
	return colorful.Color{R: math.Max(dst.R, src.R), G: math.Max(dst.G, src.G), B: math.Max(dst.B, src.B)}
}

// Screen lightens: 1 - (1-a)(1-b)
func Screen(dst, src colorful.Color) colorful.Color {
	return colorful.Color{
		R: 1 - (1-dst.R)*(1-src.R),
		G: 1 - (1-dst.G)*(1-src.G),
		B: 1 - (1-dst.B)*(1-src.B),
	}.Clamped()
}

// Scale multiplies every channel by f and clamps into gamut
func Scale(c colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}.Clamped()
}

// TcellColor converts to a 24-bit tcell color
func TcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

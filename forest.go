package forest

import (
	"github.com/gogpu/gg"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at paint submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the neutral color (no brightness change).
var ColorWhite = Color{1, 1, 1, 1}

// Hex parses a CSS-style hex color ("#RGB", "#RRGGBB" or "#RRGGBBAA").
// Malformed input yields opaque black.
func Hex(s string) Color {
	c := gg.Hex(s)
	return Color{c.R, c.G, c.B, c.A}
}

// HSL builds an opaque color from a hue in degrees and saturation and
// lightness in percent, the same units CSS hsl() uses.
func HSL(hue, saturation, lightness float64) Color {
	c := gg.HSL(hue, saturation/100, lightness/100)
	return Color{c.R, c.G, c.B, 1}
}

// Scale multiplies the RGB components by f, leaving alpha untouched, and
// clamps the result to [0, 1]. Used for the brightness filter.
func (c Color) Scale(f float64) Color {
	return Color{
		R: clamp01(c.R * f),
		G: clamp01(c.G * f),
		B: clamp01(c.B * f),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(c.A * a)
	return c
}

// toRGBA converts a Color to a premultiplied color.Color for ebiten.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// toGG converts a Color to the gg color type.
func (c Color) toGG() gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// colorRGBA implements the color.Color interface for ebiten draw calls.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets in canvas pixel space.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Mode selects which forest variant an engine renders.
type Mode uint8

const (
	ModeAmbient     Mode = iota // decorative, no records, no interaction
	ModeInteractive             // one tree per record, click to select
)

// String returns the YAML spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAmbient:
		return "ambient"
	case ModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// ParseMode maps "ambient" or "interactive" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "ambient", "":
		return ModeAmbient, true
	case "interactive":
		return ModeInteractive, true
	default:
		return ModeAmbient, false
	}
}

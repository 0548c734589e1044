package forest

import (
	"math"
	"math/rand/v2"
	"strings"
)

// Strategy selects how a tree's canopy is drawn. It is a small tagged
// variant rather than a per-species type hierarchy.
type Strategy uint8

const (
	StrategyAmbient Strategy = iota // single triangle, random green
	StrategyDefault                 // round canopy (oak-like)
	StrategyPine                    // three stacked triangles
	StrategyBaobab                  // wide trunk, small round canopy
)

// String returns a short lowercase name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAmbient:
		return "ambient"
	case StrategyDefault:
		return "default"
	case StrategyPine:
		return "pine"
	case StrategyBaobab:
		return "baobab"
	default:
		return "unknown"
	}
}

// StrategyFor maps a species tag to its draw strategy. Matching is by
// substring, so "Pine Tree" and "Scots Pine" both select StrategyPine.
// Unknown and empty tags fall back to StrategyDefault.
func StrategyFor(species string) Strategy {
	switch {
	case strings.Contains(species, "Pine"):
		return StrategyPine
	case strings.Contains(species, "Baobab"):
		return StrategyBaobab
	default:
		return StrategyDefault
	}
}

// Tree geometry constants, in pixels unless noted.
const (
	swayAmplitude   = 5.0
	swayTimeScale   = 0.001 // ms -> s
	pineLayers      = 3
	pineLayerShrink = 0.2
	highlightWidth  = 3.0
	highlightScale  = 1.2 // radius as a multiple of instance width
	highlightStart  = 0.8 // radius multiple the grow-in tween starts from
	labelWidth      = 100.0
	labelHeight     = 25.0
	labelFontSize   = 14.0
)

// Palette holds every fixed color the renderer uses. The zero value is not
// useful; start from DefaultPalette.
type Palette struct {
	SkyTop      Color
	SkyBottom   Color
	Ground      Color
	Trunk       Color
	BaobabTrunk Color
	Oak         Color
	Pine        Color
	Baobab      Color
	Highlight   Color
	LabelBox    Color
	LabelText   Color

	// JitterUnknown gives species that match no strategy keyword a random
	// green instead of the fixed Oak color.
	JitterUnknown bool

	// LabelNames labels the selected tree with its record name instead of
	// its ID. Nameless records still show the ID.
	LabelNames bool
}

// DefaultPalette returns the stock forest colors.
func DefaultPalette() Palette {
	return Palette{
		SkyTop:      Hex("#1a4855"),
		SkyBottom:   Hex("#2d6a4f"),
		Ground:      Hex("#3a5a40"),
		Trunk:       Hex("#8B4513"),
		BaobabTrunk: Hex("#A0522D"),
		Oak:         Hex("#2d6a4f"),
		Pine:        Hex("#40916c"),
		Baobab:      Hex("#52b788"),
		Highlight:   Hex("#f59e0b"),
		LabelBox:    Color{1, 1, 1, 0.8},
		LabelText:   Color{0, 0, 0, 1},
	}
}

// Appearance is the species-derived part of an instance.
type Appearance struct {
	Strategy Strategy
	Color    Color
}

// DeriveAppearance picks the draw strategy and canopy color for a species in
// interactive mode. rng is only consulted when the palette asks for jitter.
func DeriveAppearance(species string, pal Palette, rng *rand.Rand) Appearance {
	s := StrategyFor(species)
	switch s {
	case StrategyPine:
		return Appearance{Strategy: s, Color: pal.Pine}
	case StrategyBaobab:
		return Appearance{Strategy: s, Color: pal.Baobab}
	}
	if pal.JitterUnknown && !strings.Contains(species, "Oak") {
		return Appearance{Strategy: s, Color: randomGreen(rng)}
	}
	return Appearance{Strategy: s, Color: pal.Oak}
}

// randomGreen returns the color of randomGreenHSL.
func randomGreen(rng *rand.Rand) Color {
	return HSL(randomGreenHSL(rng))
}

// randomGreenHSL draws integer hsl components: hue in [100, 140),
// saturation in [40, 70)% and lightness in [20, 50)%.
func randomGreenHSL(rng *rand.Rand) (hue, sat, light float64) {
	hue = 100 + math.Floor(rng.Float64()*40)
	sat = 40 + math.Floor(rng.Float64()*30)
	light = 20 + math.Floor(rng.Float64()*30)
	return hue, sat, light
}

// newSway draws a fresh phase in [0, 2π) and speed in [0.3, 1.0).
func newSway(rng *rand.Rand) (phase, speed float64) {
	phase = rng.Float64() * math.Pi * 2
	speed = 0.3 + rng.Float64()*0.7
	return phase, speed
}

// Sway returns the horizontal displacement of t at elapsed time ms.
func Sway(t *TreeInstance, ms float64) float64 {
	return math.Sin(ms*swayTimeScale*t.SwaySpeed+t.SwayPhase) * swayAmplitude
}

// appendTree emits the commands for one tree at time ms: trunk first, then
// the canopy for its strategy.
func appendTree(cmds []DrawCommand, t *TreeInstance, ms float64, pal *Palette) []DrawCommand {
	sway := Sway(t, ms)
	x := t.X + sway
	w, h := t.Width, t.Height

	cmds = append(cmds, fillRect(t.ID, Rect{X: x - w/6, Y: t.Y - h/2, Width: w / 3, Height: h / 2}, pal.Trunk))

	switch t.Strategy {
	case StrategyAmbient:
		cmds = append(cmds, fillTriangle(t.ID,
			Vec2{x, t.Y - h},
			Vec2{x - w/2, t.Y - h/3},
			Vec2{x + w/2, t.Y - h/3},
			t.Color))

	case StrategyPine:
		layerH := h / 2 / pineLayers
		for i := 0; i < pineLayers; i++ {
			layerW := w * (1 - float64(i)*pineLayerShrink)
			base := t.Y - h/2 - float64(i)*layerH
			cmds = append(cmds, fillTriangle(t.ID,
				Vec2{x, base - layerH},
				Vec2{x - layerW/2, base},
				Vec2{x + layerW/2, base},
				t.Color))
		}

	case StrategyBaobab:
		cmds = append(cmds, fillRect(t.ID, Rect{X: x - w/4, Y: t.Y - h/2, Width: w / 2, Height: h / 2}, pal.BaobabTrunk))
		cmds = append(cmds, fillCircle(t.ID, Vec2{x, t.Y - h/2.5}, w/2, t.Color))

	default:
		cmds = append(cmds, fillCircle(t.ID, Vec2{x, t.Y - h/1.5}, w/2, t.Color))
	}
	return cmds
}

// appendHighlight emits the selection ring and name label for t. progress in
// [0, 1] drives the grow-in: 1 is the resting state.
func appendHighlight(cmds []DrawCommand, t *TreeInstance, progress float64, pal *Palette) []DrawCommand {
	progress = clamp01(progress)
	factor := highlightStart + (highlightScale-highlightStart)*progress

	cmds = append(cmds, DrawCommand{
		Type:      CommandStrokeCircle,
		TreeID:    t.ID,
		Center:    t.CanopyAnchor(),
		Radius:    t.Width * factor,
		LineWidth: highlightWidth,
		Color:     pal.Highlight,
	})
	cmds = append(cmds, fillRect(t.ID, Rect{
		X:      t.X - labelWidth/2,
		Y:      t.Y - t.Height - 30,
		Width:  labelWidth,
		Height: labelHeight,
	}, pal.LabelBox.WithAlpha(progress)))
	cmds = append(cmds, DrawCommand{
		Type:     CommandText,
		TreeID:   t.ID,
		Center:   Vec2{t.X, t.Y - t.Height - 12},
		Text:     t.Label,
		FontSize: labelFontSize,
		Color:    pal.LabelText.WithAlpha(progress),
	})
	return cmds
}

func fillRect(id string, r Rect, c Color) DrawCommand {
	return DrawCommand{Type: CommandFillRect, TreeID: id, Rect: r, Color: c}
}

func fillTriangle(id string, a, b, c Vec2, col Color) DrawCommand {
	return DrawCommand{Type: CommandFillTriangle, TreeID: id, Points: [3]Vec2{a, b, c}, Color: col}
}

func fillCircle(id string, center Vec2, r float64, c Color) DrawCommand {
	return DrawCommand{Type: CommandFillCircle, TreeID: id, Center: center, Radius: r, Color: c}
}

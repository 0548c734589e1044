package forest

import (
	"math"
	"math/rand/v2"
	"sort"
)

// Layout constants, in pixels.
const (
	ambientSpacing    = 30.0  // one ambient tree per this many pixels of width
	ambientJitter     = 10.0  // ± horizontal jitter for ambient trees
	ambientDepth      = 100.0 // ambient y spread below the horizon
	interactiveInset  = 100.0 // horizontal margin for interactive trees
	interactiveJitter = 50.0  // ± horizontal jitter for interactive trees
	interactiveDepth  = 50.0  // interactive y spread below the horizon
	horizonOffset     = 50.0  // horizon line sits this far above the bottom edge
	minTreeHeight     = 100.0
	treeHeightRange   = 150.0
)

// LayoutPolicy controls what happens to tree positions when the surface is
// resized.
type LayoutPolicy uint8

const (
	// RelayoutOnResize regenerates every instance, so trees jump to new
	// random positions.
	RelayoutOnResize LayoutPolicy = iota
	// PreserveOnResize keeps each instance's random parameters and rescales
	// its position proportionally to the new size.
	PreserveOnResize
)

// String returns the YAML spelling of the policy.
func (p LayoutPolicy) String() string {
	if p == PreserveOnResize {
		return "preserve"
	}
	return "relayout"
}

// ParseLayoutPolicy maps "relayout" or "preserve" to a LayoutPolicy.
func ParseLayoutPolicy(s string) (LayoutPolicy, bool) {
	switch s {
	case "relayout", "":
		return RelayoutOnResize, true
	case "preserve":
		return PreserveOnResize, true
	default:
		return RelayoutOnResize, false
	}
}

// LayoutAmbient generates the decorative forest for a w×h surface: one tree
// per 30 px of width, evenly spaced with jitter, sorted by ascending Y so that
// nearer trees are drawn last. A zero-area surface yields no trees.
func LayoutAmbient(rng *rand.Rand, w, h float64) []TreeInstance {
	if w <= 0 || h <= 0 {
		return nil
	}
	count := int(math.Floor(w / ambientSpacing))
	if count == 0 {
		return nil
	}

	trees := make([]TreeInstance, count)
	step := w / float64(count)
	for i := range trees {
		t := &trees[i]
		t.X = step*float64(i) + rng.Float64()*2*ambientJitter - ambientJitter
		t.Y = h - horizonOffset + rng.Float64()*ambientDepth
		setHeight(t, minTreeHeight+rng.Float64()*treeHeightRange)
		t.Color = randomGreen(rng)
		t.SwayPhase, t.SwaySpeed = newSway(rng)
		t.Strategy = StrategyAmbient
		t.record = -1
	}

	sort.SliceStable(trees, func(i, j int) bool {
		return trees[i].Y < trees[j].Y
	})
	return trees
}

// LayoutInteractive generates one instance per record, in record order.
// Record IDs are copied onto the instances. An empty record list or a
// zero-area surface yields no trees.
func LayoutInteractive(rng *rand.Rand, records []TreeRecord, pal Palette, w, h float64) []TreeInstance {
	if len(records) == 0 || w <= 0 || h <= 0 {
		return nil
	}

	n := float64(len(records))
	trees := make([]TreeInstance, len(records))
	for i := range records {
		rec := &records[i]
		t := &trees[i]
		t.ID = rec.ID
		t.Label = rec.displayLabel(pal.LabelNames)
		t.X = interactiveInset + (w-2*interactiveInset)*(float64(i)+0.5)/n +
			rng.Float64()*2*interactiveJitter - interactiveJitter
		t.Y = h - horizonOffset + rng.Float64()*interactiveDepth
		setHeight(t, minTreeHeight+rng.Float64()*treeHeightRange)
		app := DeriveAppearance(rec.Species, pal, rng)
		t.Strategy = app.Strategy
		t.Color = app.Color
		t.SwayPhase, t.SwaySpeed = newSway(rng)
		t.record = i
	}
	return trees
}

// rescale moves instances laid out for an oldW×oldH surface onto a newW×newH
// one, keeping their distance from the bottom edge so trees stay planted on
// the ground band. Heights and sway parameters are kept.
func rescale(trees []TreeInstance, oldW, oldH, newW, newH float64) {
	if oldW <= 0 || oldH <= 0 {
		return
	}
	sx := newW / oldW
	for i := range trees {
		t := &trees[i]
		t.X *= sx
		t.Y = newH - (oldH - t.Y)
	}
}

// clampInstances pulls every instance's anchor into [0,w]×[0,h].
func clampInstances(trees []TreeInstance, w, h float64) {
	for i := range trees {
		t := &trees[i]
		t.X = math.Min(math.Max(t.X, 0), w)
		t.Y = math.Min(math.Max(t.Y, 0), h)
	}
}

func setHeight(t *TreeInstance, h float64) {
	t.Height = h
	t.Width = h / 3
}

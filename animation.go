package forest

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// highlightTween drives the selection highlight grow-in from 0 to 1. A zero
// duration snaps straight to 1.
type highlightTween struct {
	tween    *gween.Tween
	value    float64
	duration time.Duration
	ease     ease.TweenFunc
	Done     bool
}

func newHighlightTween(d time.Duration) highlightTween {
	return highlightTween{duration: d, ease: ease.OutCubic, value: 1, Done: true}
}

// restart begins a new grow-in.
func (h *highlightTween) restart() {
	if h.duration <= 0 {
		h.tween = nil
		h.value = 1
		h.Done = true
		return
	}
	h.tween = gween.New(0, 1, float32(h.duration.Seconds()), h.ease)
	h.value = 0
	h.Done = false
}

// Update advances the tween by dt seconds.
func (h *highlightTween) Update(dt float32) {
	if h.Done || h.tween == nil {
		return
	}
	val, finished := h.tween.Update(dt)
	h.value = float64(val)
	if finished {
		h.value = 1
		h.Done = true
	}
}

func (h *highlightTween) progress() float64 {
	return h.value
}

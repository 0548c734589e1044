package forest

import "fmt"

// Container reports the content box of the element a forest is drawn into.
// ok is false while the container is not attached to anything yet.
type Container interface {
	ContentSize() (w, h int, ok bool)
}

// Viewport tracks the pixel size of the drawing surface.
type Viewport struct {
	width, height int
}

// Size returns the current pixel size.
func (v *Viewport) Size() (w, h int) {
	return v.width, v.height
}

// SyncSize copies the container's content box into the viewport. A nil or
// detached container leaves the viewport untouched. It reports whether the
// size changed.
func (v *Viewport) SyncSize(c Container) bool {
	if c == nil {
		return false
	}
	w, h, ok := c.ContentSize()
	if !ok {
		return false
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == v.width && h == v.height {
		return false
	}
	v.width, v.height = w, h
	return true
}

// FixedContainer is a Container with a settable size. Hosts that learn their
// size from a callback (ebiten's Layout, a test) store it here.
type FixedContainer struct {
	W, H     int
	Detached bool
}

// ContentSize implements Container.
func (c *FixedContainer) ContentSize() (int, int, bool) {
	if c.Detached {
		return 0, 0, false
	}
	return c.W, c.H, true
}

// Resize sets the size. Negative sizes are rejected.
func (c *FixedContainer) Resize(w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("forest: invalid container size %dx%d", w, h)
	}
	c.W, c.H = w, h
	return nil
}

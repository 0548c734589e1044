package forest

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Hit shapes ---

// HitShape is a region tested against pointer coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitCircle is an open disc: points exactly on the circumference are outside.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies strictly inside the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// CanopyHit returns the hit region of a tree: a circle of radius Width around
// its canopy anchor. It approximates the canopy and ignores sway and the
// drawn silhouette.
func CanopyHit(t *TreeInstance) HitShape {
	a := t.CanopyAnchor()
	return HitCircle{CenterX: a.X, CenterY: a.Y, Radius: t.Width}
}

// HitTest returns the ID of the first instance, in slice order, whose canopy
// hit circle contains (x, y). ok is false when nothing is hit.
func HitTest(instances []TreeInstance, x, y float64) (id string, ok bool) {
	i := hitIndex(instances, x, y, CanopyHit)
	if i < 0 {
		return "", false
	}
	return instances[i].ID, true
}

func hitIndex(instances []TreeInstance, x, y float64, shape func(*TreeInstance) HitShape) int {
	for i := range instances {
		if shape(&instances[i]).Contains(x, y) {
			return i
		}
	}
	return -1
}

// --- Mouse buttons ---

// MouseButton identifies the mouse button that selects trees.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// ParseMouseButton maps "left", "right" or "middle" to a MouseButton. The
// empty string is left.
func ParseMouseButton(s string) (MouseButton, bool) {
	switch s {
	case "left", "":
		return MouseButtonLeft, true
	case "right":
		return MouseButtonRight, true
	case "middle":
		return MouseButtonMiddle, true
	default:
		return MouseButtonLeft, false
	}
}

func (b MouseButton) toEbiten() ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// SetSelectButton sets the mouse button whose release selects trees. The
// default is MouseButtonLeft. Touch input always selects.
func (f *Forest) SetSelectButton(b MouseButton) {
	f.selectButton = b
}

// SetHitShape replaces the per-tree hit region used by Click. nil restores
// CanopyHit.
func (f *Forest) SetHitShape(shape func(*TreeInstance) HitShape) {
	if shape == nil {
		shape = CanopyHit
	}
	f.hitShape = shape
}

// --- Selection ---

// Selection holds at most one selected tree ID.
type Selection struct {
	id  string
	set bool
}

// ID returns the selected tree ID; ok is false when nothing is selected.
func (s Selection) ID() (id string, ok bool) {
	return s.id, s.set
}

// Is reports whether id is the selected tree.
func (s Selection) Is(id string) bool {
	return s.set && s.id == id
}

// SelectionContext is delivered to selection callbacks on every click.
type SelectionContext struct {
	// Record is a copy of the selected record, or nil when the click
	// cleared the selection.
	Record *TreeRecord
	// Previous is the ID selected before the click, empty if none.
	Previous string
	// Changed reports whether the selection differs from before the click.
	Changed bool
	X, Y    float64
}

// SelectionEvent is forwarded to an EventStore on every click.
type SelectionEvent struct {
	TreeID   string
	Selected bool
	X, Y     float64
}

// EventStore receives selection events, e.g. an ECS bridge.
type EventStore interface {
	EmitSelection(event SelectionEvent)
}

// --- Handler registry ---

type selectHandler struct {
	id uint32
	fn func(SelectionContext)
}

type handlerRegistry struct {
	selection []selectHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.selection
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectHandler{}
			h.reg.selection = s[:len(s)-1]
			return
		}
	}
}

// OnSelect registers a callback fired synchronously on every click in
// interactive mode, including clicks that hit nothing.
func (f *Forest) OnSelect(fn func(SelectionContext)) CallbackHandle {
	f.handlers.nextID++
	id := f.handlers.nextID
	f.handlers.selection = append(f.handlers.selection, selectHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &f.handlers}
}

// SetEventStore sets the optional selection event sink.
func (f *Forest) SetEventStore(store EventStore) {
	f.store = store
}

// Selected returns the selected record, or nil.
func (f *Forest) Selected() *TreeRecord {
	id, ok := f.selection.ID()
	if !ok {
		return nil
	}
	for i := range f.instances {
		if f.instances[i].ID == id && f.instances[i].record >= 0 {
			rec := f.records[f.instances[i].record]
			return &rec
		}
	}
	return nil
}

// Selection returns the current selection state.
func (f *Forest) Selection() Selection {
	return f.selection
}

// Click hit-tests (x, y) against the current instances (through the hit
// shape, CanopyHit by default) and updates the
// selection: the first tree hit is selected, a miss clears the selection.
// Selection handlers run before Click returns. Ambient forests ignore
// clicks.
func (f *Forest) Click(x, y float64) {
	if f.mode != ModeInteractive {
		return
	}

	prev, hadPrev := f.selection.ID()
	ctx := SelectionContext{X: x, Y: y}
	if hadPrev {
		ctx.Previous = prev
	}

	if i := hitIndex(f.instances, x, y, f.hitShape); i >= 0 {
		t := &f.instances[i]
		f.selection = Selection{id: t.ID, set: true}
		if t.record >= 0 && t.record < len(f.records) {
			rec := f.records[t.record]
			ctx.Record = &rec
		}
	} else {
		f.selection = Selection{}
	}

	cur, hasCur := f.selection.ID()
	ctx.Changed = hasCur != hadPrev || cur != prev
	if ctx.Changed && hasCur {
		f.highlight.restart()
	}

	Logger().Debug("forest: click", "x", x, "y", y, "selected", cur, "changed", ctx.Changed)

	for _, h := range f.handlers.selection {
		h.fn(ctx)
	}
	if f.store != nil {
		f.store.EmitSelection(SelectionEvent{TreeID: cur, Selected: hasCur, X: x, Y: y})
	}
}

// --- Host input ---

// processInput turns this frame's pointer releases into clicks. Injected
// clicks are consumed first; real input is skipped on frames that consume
// one.
func (f *Forest) processInput() {
	if f.processInjectedInput() {
		return
	}
	if inpututil.IsMouseButtonJustReleased(f.selectButton.toEbiten()) {
		mx, my := ebiten.CursorPosition()
		f.Click(float64(mx), float64(my))
	}
	f.touchIDs = inpututil.AppendJustReleasedTouchIDs(f.touchIDs[:0])
	for _, id := range f.touchIDs {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		f.Click(float64(tx), float64(ty))
	}
}

package forest

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Forest is the engine for one forest surface. It owns the layout, the
// selection, the animation driver and the per-frame command buffer. All
// methods must be called from a single goroutine (the host's frame loop).
type Forest struct {
	mode         Mode
	palette      Palette
	brightness   float64
	groundHeight float64
	policy       LayoutPolicy
	clamp        bool
	debug        bool

	rng   *rand.Rand
	sched Scheduler
	clock Clock

	// Records and the instances derived from them.
	records   []TreeRecord
	instances []TreeInstance
	layoutW   int
	layoutH   int

	selection   Selection
	highlight   highlightTween
	lastFrameMS float64

	// Host binding.
	viewport  Viewport
	painter   Painter
	container Container
	driver    *Driver
	attached  bool

	// Render state.
	commands []DrawCommand

	// Input state.
	handlers     handlerRegistry
	store        EventStore
	hitShape     func(*TreeInstance) HitShape
	selectButton MouseButton
	injectQueue  []syntheticClick
	touchIDs     []ebiten.TouchID

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string
	testRunner      *TestRunner
}

// Option customizes a Forest at construction.
type Option func(*Forest)

// WithScheduler sets the frame scheduler. The default is a ManualScheduler
// that the host pumps once per frame.
func WithScheduler(s Scheduler) Option {
	return func(f *Forest) { f.sched = s }
}

// WithClock sets the clock the animation driver reads.
func WithClock(c Clock) Option {
	return func(f *Forest) { f.clock = c }
}

// WithRand sets the random source used for layout and colors.
func WithRand(r *rand.Rand) Option {
	return func(f *Forest) { f.rng = r }
}

// New creates a detached forest from cfg. A zero Brightness or Palette is
// filled from DefaultConfig(cfg.Mode), so New(Config{Mode: m}) draws the
// stock forest.
func New(cfg Config, opts ...Option) *Forest {
	def := DefaultConfig(cfg.Mode)
	if cfg.Brightness == 0 {
		cfg.Brightness = def.Brightness
	}
	if cfg.Palette == (Palette{}) {
		cfg.Palette = def.Palette
	}
	f := &Forest{
		mode:          cfg.Mode,
		palette:       cfg.Palette,
		brightness:    cfg.Brightness,
		groundHeight:  cfg.GroundHeight,
		policy:        cfg.LayoutPolicy,
		clamp:         cfg.ClampToBounds,
		debug:         cfg.Debug,
		highlight:     newHighlightTween(cfg.HighlightDuration),
		commands:      make([]DrawCommand, 0, defaultCommandCap),
		ScreenshotDir: cfg.ScreenshotDir,
		hitShape:      CanopyHit,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = newRand(cfg.Seed)
	}
	if f.sched == nil {
		f.sched = &ManualScheduler{}
	}
	if f.clock == nil {
		f.clock = systemClock{}
	}
	if f.ScreenshotDir == "" {
		f.ScreenshotDir = defaultScreenshotDir
	}
	return f
}

// newRand returns a PCG source seeded with seed, or with a random seed when
// seed is zero.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Mode returns the forest variant.
func (f *Forest) Mode() Mode {
	return f.mode
}

// Scheduler returns the frame scheduler the driver uses.
func (f *Forest) Scheduler() Scheduler {
	return f.sched
}

// Driver returns the current animation driver, or nil while detached.
func (f *Forest) Driver() *Driver {
	return f.driver
}

// Instances returns the current layout. The returned slice MUST NOT be
// mutated and is replaced on every relayout.
func (f *Forest) Instances() []TreeInstance {
	return f.instances
}

// Size returns the synchronized surface size.
func (f *Forest) Size() (w, h int) {
	return f.viewport.Size()
}

// SetRecords replaces the record list and regenerates the layout. The slice
// is copied; the caller's records are never modified. Ambient forests ignore
// records.
func (f *Forest) SetRecords(records []TreeRecord) {
	f.records = append([]TreeRecord(nil), records...)
	if f.attached {
		f.relayout(false)
	}
}

// Records returns a copy of the current record list.
func (f *Forest) Records() []TreeRecord {
	return append([]TreeRecord(nil), f.records...)
}

// --- Lifecycle ---

// Attach binds the forest to a painter and the container that sizes it,
// computes the first layout and starts the animation driver. If either is
// nil the forest stays idle. Attaching an attached forest detaches it first.
func (f *Forest) Attach(p Painter, c Container) {
	if f.attached {
		f.Detach()
	}
	if p == nil || c == nil {
		Logger().Debug("forest: attach skipped, no surface", "mode", f.mode)
		return
	}
	f.painter = p
	f.container = c
	f.attached = true
	f.viewport = Viewport{}
	f.viewport.SyncSize(c)
	f.relayout(false)

	w, h := f.viewport.Size()
	Logger().Debug("forest: attached", "mode", f.mode, "width", w, "height", h, "trees", len(f.instances))

	f.lastFrameMS = 0
	f.driver = NewDriver(f.sched, f.clock, f.renderFrame)
	f.driver.Start()
}

// Resize re-reads the container size. When it changed the layout is
// recomputed according to the layout policy; the driver keeps running.
func (f *Forest) Resize() {
	if !f.attached {
		return
	}
	if !f.viewport.SyncSize(f.container) {
		return
	}
	w, h := f.viewport.Size()
	Logger().Debug("forest: resized", "width", w, "height", h)
	f.relayout(true)
}

// Detach stops the driver and drops the surface and container. Selection
// handlers stay registered. No frame is rendered after Detach returns.
func (f *Forest) Detach() {
	if !f.attached {
		return
	}
	if f.driver != nil {
		f.driver.Stop()
	}
	f.painter = nil
	f.container = nil
	f.attached = false
	f.injectQueue = f.injectQueue[:0]
	Logger().Debug("forest: detached", "mode", f.mode)
}

// Attached reports whether the forest is bound to a surface.
func (f *Forest) Attached() bool {
	return f.attached
}

// relayout regenerates instances for the current viewport. With
// PreserveOnResize a resize rescales the existing instances instead.
func (f *Forest) relayout(resized bool) {
	start := time.Now()
	w, h := f.viewport.Size()
	fw, fh := float64(w), float64(h)

	switch {
	case w <= 0 || h <= 0:
		f.instances = nil
	case resized && f.policy == PreserveOnResize && len(f.instances) > 0:
		rescale(f.instances, float64(f.layoutW), float64(f.layoutH), fw, fh)
	case f.mode == ModeInteractive:
		f.instances = LayoutInteractive(f.rng, f.records, f.palette, fw, fh)
	default:
		f.instances = LayoutAmbient(f.rng, fw, fh)
	}
	if f.clamp {
		clampInstances(f.instances, fw, fh)
	}
	f.layoutW, f.layoutH = w, h

	if id, ok := f.selection.ID(); ok && !f.hasInstance(id) {
		f.selection = Selection{}
	}

	if f.debug {
		Logger().Debug("forest: relayout", "trees", len(f.instances), "resized", resized,
			"policy", f.policy, "elapsed", time.Since(start))
	}
}

func (f *Forest) hasInstance(id string) bool {
	for i := range f.instances {
		if f.instances[i].ID == id {
			return true
		}
	}
	return false
}

// --- Frame ---

// renderFrame is the driver's render callback. A panic while building or
// painting a frame is logged and the frame skipped; the driver keeps going.
func (f *Forest) renderFrame(ms float64) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("forest: frame skipped", "t_ms", ms, "panic", r)
		}
	}()
	if dt := ms - f.lastFrameMS; dt > 0 {
		f.highlight.Update(float32(dt / 1000))
	}
	f.lastFrameMS = ms

	if f.painter == nil {
		return
	}

	var stats debugStats
	var t0 time.Time
	if f.debug {
		t0 = time.Now()
	}

	f.commands = f.emitFrame(f.commands[:0], ms)

	if f.debug {
		stats.emitTime = time.Since(t0)
		stats.commandCount = len(f.commands)
		stats.treeCount = len(f.instances)
		t0 = time.Now()
	}

	submit(f.painter, f.commands)

	if f.debug {
		stats.submitTime = time.Since(t0)
		stats.frameMS = ms
		f.debugLog(stats)
	}
}

// Update processes pointer input and advances the test runner. Hosts call it
// once per tick.
func (f *Forest) Update() {
	if f.testRunner != nil {
		f.testRunner.step(f)
	}
	f.processInput()
}

// Advance runs the test runner and consumes one injected click without
// reading device input. Headless hosts call it in place of Update.
func (f *Forest) Advance() {
	if f.testRunner != nil {
		f.testRunner.step(f)
	}
	f.processInjectedInput()
}

// SetDebugMode enables or disables per-frame stats logging.
func (f *Forest) SetDebugMode(enabled bool) {
	f.debug = enabled
}

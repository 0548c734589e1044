package forest

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// Resizable lets the user resize the window; the forest follows.
	Resizable bool

	// ExitWhenScriptDone ends Run once the attached TestRunner has finished
	// and its screenshots are written.
	ExitWhenScriptDone bool

	// SelectButton is the mouse button that selects trees.
	SelectButton MouseButton
}

// Game hosts a Forest inside ebiten's game loop. It implements ebiten.Game:
// Layout sizes the container and attaches the forest on first call, Update
// feeds input, and Draw pumps the frame scheduler onto the screen.
type Game struct {
	forest    *Forest
	painter   *EbitenPainter
	container *FixedContainer
	fps       *fpsOverlay
	exitDone  bool
}

// NewGame wraps f for ebiten. f must use the default ManualScheduler (or
// another scheduler with a RunPending method) so Draw can pump it.
func NewGame(f *Forest) *Game {
	if f == nil {
		panic("forest: NewGame needs a forest")
	}
	return &Game{
		forest:    f,
		painter:   NewEbitenPainter(),
		container: &FixedContainer{},
	}
}

// Forest returns the hosted forest.
func (g *Game) Forest() *Forest {
	return g.forest
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.forest.Update()
	if g.fps != nil {
		g.fps.update(1 / float64(ebiten.TPS()))
	}
	if g.exitDone && g.forest.testRunner != nil && g.forest.testRunner.Done() &&
		len(g.forest.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.SetTarget(screen)
	if pump, ok := g.forest.Scheduler().(interface{ RunPending() int }); ok {
		pump.RunPending()
	}
	g.forest.flushScreenshots(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The canvas tracks the outside size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.container.W, g.container.H = outsideWidth, outsideHeight
	if !g.forest.Attached() {
		g.forest.Attach(g.painter, g.container)
	} else {
		g.forest.Resize()
	}
	return outsideWidth, outsideHeight
}

// Close detaches the forest.
func (g *Game) Close() {
	g.container.Detached = true
	g.forest.Detach()
}

// Run opens a window and runs f until the window is closed. The forest is
// detached when Run returns.
func Run(f *Forest, cfg RunConfig) error {
	g := NewGame(f)
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	g.exitDone = cfg.ExitWhenScriptDone
	f.SetSelectButton(cfg.SelectButton)

	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	Logger().Info("forest: running", "mode", f.Mode(), "title", cfg.Title)

	err := ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("forest: run: %w", err)
	}
	return nil
}

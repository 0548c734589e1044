// Package forest renders an animated, procedurally generated forest onto a
// 2D drawing surface.
//
// A [Forest] runs in one of two modes. [ModeAmbient] fills the surface with
// decorative trees that gently sway and never respond to input.
// [ModeInteractive] draws one tree per caller-supplied [TreeRecord], picks a
// shape from the record's species, and lets the user click a canopy to
// select it: the selected tree gets an outline ring and a label showing its
// ID (or its name, with [Palette.LabelNames]), and every click is reported
// to handlers registered with [Forest.OnSelect].
//
// # Quick start
//
// The simplest way to show a forest is [Run], which opens an Ebitengine
// window and drives the frame loop:
//
//	cfg := forest.DefaultConfig(forest.ModeInteractive)
//	f := forest.New(cfg)
//	f.SetRecords(records)
//	f.OnSelect(func(ctx forest.SelectionContext) {
//		if ctx.Record != nil {
//			fmt.Println(ctx.Record.Name)
//		}
//	})
//	forest.Run(f, forest.RunConfig{Title: "My Forest", Width: 800, Height: 600})
//
// For full control wrap the forest with [NewGame] and hand it to
// ebiten.RunGame yourself.
//
// # Frames
//
// Each frame is built as a list of [DrawCommand] values (background, ground,
// trees in layout order, then the selection highlight right after the
// selected tree) and replayed onto a [Painter]. Two painters ship with the
// package: [EbitenPainter] for windows and [GGPainter], a gg software canvas
// for headless rendering and PNG output.
//
//	p := forest.NewGGPainter(800, 600)
//	f.Attach(p, p)
//	f.Render(1500) // t = 1.5s
//	p.SavePNG("forest.png")
//
// # Lifecycle
//
// [Forest.Attach] binds a painter and a [Container], computes the layout and
// starts the animation [Driver]. [Forest.Resize] re-reads the container size
// and relayouts. [Forest.Detach] stops the driver; no frame is rendered
// afterwards. The driver asks a [Scheduler] for frames; the default
// [ManualScheduler] is pumped by the host once per display frame.
//
// # Configuration
//
// [DefaultConfig] returns the defaults for a mode. [LoadConfig] reads the
// same settings from YAML and [LoadRoster] reads tree records.
//
// # Logging
//
// The package logs through log/slog. Logging is silent until a logger is
// installed with [SetLogger]. [Forest.SetDebugMode] adds per-frame stats at
// debug level.
//
// # Testing
//
// [Forest.InjectClick] queues synthetic clicks, [LoadTestScript] sequences
// clicks, resizes and screenshots from JSON, and [Forest.Screenshot] writes
// PNGs to [Forest.ScreenshotDir].
package forest

// Snapshot renders a forest headlessly with the gg software rasterizer and
// writes every frame as a PNG. The clock advances a fixed step per frame, so
// the output is reproducible for a given seed. An optional JSON test script
// injects clicks, resizes and labeled screenshots along the way.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/greenroots/forest"
)

// stepClock advances by step every time the scheduler is pumped.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time { return c.now }

func main() {
	mode := flag.String("mode", "interactive", "ambient or interactive")
	rosterPath := flag.String("roster", "examples/myforest/roster.yaml", "YAML roster (interactive only)")
	configPath := flag.String("config", "", "optional YAML config file")
	scriptPath := flag.String("script", "", "optional JSON test script")
	outDir := flag.String("out", "snapshots", "output directory")
	width := flag.Int("w", 800, "canvas width")
	height := flag.Int("h", 400, "canvas height")
	frames := flag.Int("frames", 30, "number of frames after frame 0")
	fps := flag.Int("fps", 30, "simulated frames per second")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	forest.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	m, ok := forest.ParseMode(*mode)
	if !ok {
		log.Fatalf("unknown mode %q", *mode)
	}
	cfg := forest.DefaultConfig(m)
	if *configPath != "" {
		loaded, err := forest.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = *loaded
	}
	if cfg.Seed == 0 {
		cfg.Seed = *seed
	}
	cfg.ScreenshotDir = *outDir

	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %d", *fps)
	}
	clock := &stepClock{now: time.Unix(0, 0), step: time.Second / time.Duration(*fps)}
	sched := &forest.ManualScheduler{}
	f := forest.New(cfg, forest.WithScheduler(sched), forest.WithClock(clock))

	if cfg.Mode == forest.ModeInteractive {
		records, err := forest.LoadRoster(*rosterPath)
		if err != nil {
			log.Fatal(err)
		}
		f.SetRecords(records)
		f.OnSelect(func(ctx forest.SelectionContext) {
			if ctx.Record != nil {
				slog.Info("selected", "name", ctx.Record.Name, "species", ctx.Record.Species)
			}
		})
	}

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := forest.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		f.SetTestRunner(runner)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	p := forest.NewGGPainter(*width, *height)
	defer p.Close()

	f.Attach(p, p) // renders frame 0
	defer f.Detach()
	if err := save(p, *outDir, 0); err != nil {
		log.Fatal(err)
	}

	for i := 1; i <= *frames; i++ {
		f.Advance()
		clock.now = clock.now.Add(clock.step)
		sched.RunPending()
		f.FlushScreenshots(p)
		if err := save(p, *outDir, i); err != nil {
			log.Fatal(err)
		}
	}
	slog.Info("snapshot done", "frames", *frames+1, "dir", *outDir, "trees", len(f.Instances()))
}

func save(p *forest.GGPainter, dir string, frame int) error {
	return p.SavePNG(filepath.Join(dir, fmt.Sprintf("frame_%03d.png", frame)))
}

package forest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	tests := []struct {
		mode       Mode
		brightness float64
		ground     float64
		highlight  time.Duration
	}{
		{ModeAmbient, 0.8, 0, 0},
		{ModeInteractive, 0.9, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			cfg := DefaultConfig(tt.mode)
			if cfg.Mode != tt.mode || cfg.Brightness != tt.brightness ||
				cfg.GroundHeight != tt.ground || cfg.HighlightDuration != tt.highlight {
				t.Errorf("DefaultConfig = %+v", cfg)
			}
			if cfg.LayoutPolicy != RelayoutOnResize || cfg.ClampToBounds {
				t.Errorf("layout defaults = %v / %v", cfg.LayoutPolicy, cfg.ClampToBounds)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
mode: interactive
seed: 42
brightness: 1
groundHeight: 0
highlightDuration: 400ms
layoutPolicy: preserve
clampToBounds: true
screenshotDir: out
palette:
  skyTop: "#000000"
  pine: "#0f0"
  jitterUnknown: true
  labelNames: true
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Mode != ModeInteractive || cfg.Seed != 42 {
		t.Errorf("mode/seed = %v/%v", cfg.Mode, cfg.Seed)
	}
	if cfg.Brightness != 1 || cfg.GroundHeight != 0 {
		t.Errorf("brightness/ground = %v/%v", cfg.Brightness, cfg.GroundHeight)
	}
	if cfg.HighlightDuration != 400*time.Millisecond {
		t.Errorf("highlight = %v", cfg.HighlightDuration)
	}
	if cfg.LayoutPolicy != PreserveOnResize || !cfg.ClampToBounds || cfg.ScreenshotDir != "out" {
		t.Errorf("policy/clamp/dir = %v/%v/%q", cfg.LayoutPolicy, cfg.ClampToBounds, cfg.ScreenshotDir)
	}
	if cfg.Palette.SkyTop != (Color{0, 0, 0, 1}) || cfg.Palette.Pine != (Color{0, 1, 0, 1}) {
		t.Errorf("palette overrides = %v / %v", cfg.Palette.SkyTop, cfg.Palette.Pine)
	}
	if cfg.Palette.Baobab != DefaultPalette().Baobab {
		t.Error("unset palette colors should keep defaults")
	}
	if !cfg.Palette.JitterUnknown || !cfg.Palette.LabelNames {
		t.Error("palette flags not applied")
	}
}

func TestParseConfigDefaultsByMode(t *testing.T) {
	cfg, err := ParseConfig([]byte("mode: ambient\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Brightness != 0.8 || cfg.GroundHeight != 0 {
		t.Errorf("ambient defaults = %+v", cfg)
	}
	cfg, err = ParseConfig([]byte("{}"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != ModeAmbient {
		t.Errorf("empty mode = %v, want ambient", cfg.Mode)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name, yaml, want string
	}{
		{"bad yaml", "mode: [", "failed to parse"},
		{"bad mode", "mode: forest", "mode"},
		{"bad duration", "highlightDuration: soon", "highlightDuration"},
		{"negative duration", "highlightDuration: -1s", "highlightDuration"},
		{"bad policy", "layoutPolicy: sticky", "layoutPolicy"},
		{"negative brightness", "brightness: -0.5", "brightness"},
		{"zero brightness", "brightness: 0", "brightness"},
		{"negative ground", "groundHeight: -1", "groundHeight"},
		{"bad hex", "palette:\n  oak: green", "oak"},
		{"short hex", "palette:\n  oak: \"#12\"", "oak"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forest.yaml")
	if err := os.WriteFile(path, []byte("mode: interactive\nseed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 7 || cfg.Mode != ModeInteractive {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidHex(t *testing.T) {
	tests := map[string]bool{
		"#fff":      true,
		"#ffff":     true,
		"#2d6a4f":   true,
		"#2D6A4F80": true,
		"2d6a4f":    false,
		"#2d6a4":    false,
		"#gggggg":   false,
		"#":         false,
		"":          false,
	}
	for in, want := range tests {
		if got := validHex(in); got != want {
			t.Errorf("validHex(%q) = %v, want %v", in, got, want)
		}
	}
}

package forest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything needed to construct a Forest.
type Config struct {
	Mode Mode

	// Seed seeds the layout and color randomness. Zero picks a random seed.
	Seed uint64

	// Brightness multiplies every emitted RGB component. 1 leaves colors
	// unchanged. New treats zero as unset and uses the mode default.
	Brightness float64

	// GroundHeight is the height of the ground band drawn along the bottom
	// edge in interactive mode. Zero disables it.
	GroundHeight float64

	// Palette holds the fixed colors. New replaces a zero Palette with
	// DefaultPalette.
	Palette Palette

	// HighlightDuration is the selection highlight grow-in time. Zero, the
	// default, shows the highlight at full size immediately.
	HighlightDuration time.Duration

	LayoutPolicy  LayoutPolicy
	ClampToBounds bool
	Debug         bool

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
}

const (
	ambientBrightness     = 0.8
	interactiveBrightness = 0.9
	defaultGroundHeight   = 50
)

// DefaultConfig returns the defaults for mode.
func DefaultConfig(mode Mode) Config {
	cfg := Config{
		Mode:          mode,
		Brightness:    ambientBrightness,
		Palette:       DefaultPalette(),
		LayoutPolicy:  RelayoutOnResize,
		ScreenshotDir: defaultScreenshotDir,
	}
	if mode == ModeInteractive {
		cfg.Brightness = interactiveBrightness
		cfg.GroundHeight = defaultGroundHeight
	}
	return cfg
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Mode != ModeAmbient && c.Mode != ModeInteractive {
		return fmt.Errorf("mode: unknown value %d", c.Mode)
	}
	if c.Brightness <= 0 {
		return fmt.Errorf("brightness must be > 0, got %v", c.Brightness)
	}
	if c.GroundHeight < 0 {
		return fmt.Errorf("groundHeight must be >= 0, got %v", c.GroundHeight)
	}
	if c.HighlightDuration < 0 {
		return fmt.Errorf("highlightDuration must be >= 0, got %v", c.HighlightDuration)
	}
	if c.LayoutPolicy != RelayoutOnResize && c.LayoutPolicy != PreserveOnResize {
		return fmt.Errorf("layoutPolicy: unknown value %d", c.LayoutPolicy)
	}
	return nil
}

// fileConfig is the YAML shape of Config. Unset fields keep the mode
// defaults.
//
//	mode: interactive
//	seed: 42
//	brightness: 1
//	groundHeight: 50
//	highlightDuration: 300ms
//	layoutPolicy: preserve
//	clampToBounds: true
//	palette:
//	  skyTop: "#1a4855"
//	  pine: "#40916c"
type fileConfig struct {
	Mode              string      `yaml:"mode"`
	Seed              uint64      `yaml:"seed"`
	Brightness        *float64    `yaml:"brightness"`
	GroundHeight      *float64    `yaml:"groundHeight"`
	HighlightDuration string      `yaml:"highlightDuration"`
	LayoutPolicy      string      `yaml:"layoutPolicy"`
	ClampToBounds     bool        `yaml:"clampToBounds"`
	Debug             bool        `yaml:"debug"`
	ScreenshotDir     string      `yaml:"screenshotDir"`
	Palette           paletteFile `yaml:"palette"`
}

// paletteFile holds hex overrides; empty strings keep the default color.
type paletteFile struct {
	SkyTop        string `yaml:"skyTop"`
	SkyBottom     string `yaml:"skyBottom"`
	Ground        string `yaml:"ground"`
	Trunk         string `yaml:"trunk"`
	BaobabTrunk   string `yaml:"baobabTrunk"`
	Oak           string `yaml:"oak"`
	Pine          string `yaml:"pine"`
	Baobab        string `yaml:"baobab"`
	Highlight     string `yaml:"highlight"`
	LabelBox      string `yaml:"labelBox"`
	LabelText     string `yaml:"labelText"`
	JitterUnknown bool   `yaml:"jitterUnknown"`
	LabelNames    bool   `yaml:"labelNames"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read forest config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML config bytes and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse forest config: %w", err)
	}

	mode, ok := ParseMode(fc.Mode)
	if !ok {
		return nil, fmt.Errorf("invalid forest config: mode: unknown value %q", fc.Mode)
	}
	cfg := DefaultConfig(mode)
	cfg.Seed = fc.Seed
	cfg.ClampToBounds = fc.ClampToBounds
	cfg.Debug = fc.Debug
	if fc.Brightness != nil {
		cfg.Brightness = *fc.Brightness
	}
	if fc.GroundHeight != nil {
		cfg.GroundHeight = *fc.GroundHeight
	}
	if fc.ScreenshotDir != "" {
		cfg.ScreenshotDir = fc.ScreenshotDir
	}
	if fc.HighlightDuration != "" {
		d, err := time.ParseDuration(fc.HighlightDuration)
		if err != nil {
			return nil, fmt.Errorf("invalid forest config: highlightDuration: %w", err)
		}
		cfg.HighlightDuration = d
	}
	if fc.LayoutPolicy != "" {
		p, ok := ParseLayoutPolicy(fc.LayoutPolicy)
		if !ok {
			return nil, fmt.Errorf("invalid forest config: layoutPolicy: unknown value %q", fc.LayoutPolicy)
		}
		cfg.LayoutPolicy = p
	}
	if err := fc.Palette.apply(&cfg.Palette); err != nil {
		return nil, fmt.Errorf("invalid forest config: palette: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid forest config: %w", err)
	}
	return &cfg, nil
}

func (pf *paletteFile) apply(p *Palette) error {
	fields := []struct {
		name string
		hex  string
		dst  *Color
	}{
		{"skyTop", pf.SkyTop, &p.SkyTop},
		{"skyBottom", pf.SkyBottom, &p.SkyBottom},
		{"ground", pf.Ground, &p.Ground},
		{"trunk", pf.Trunk, &p.Trunk},
		{"baobabTrunk", pf.BaobabTrunk, &p.BaobabTrunk},
		{"oak", pf.Oak, &p.Oak},
		{"pine", pf.Pine, &p.Pine},
		{"baobab", pf.Baobab, &p.Baobab},
		{"highlight", pf.Highlight, &p.Highlight},
		{"labelBox", pf.LabelBox, &p.LabelBox},
		{"labelText", pf.LabelText, &p.LabelText},
	}
	for _, fd := range fields {
		if fd.hex == "" {
			continue
		}
		if !validHex(fd.hex) {
			return fmt.Errorf("%s: malformed hex color %q", fd.name, fd.hex)
		}
		*fd.dst = Hex(fd.hex)
	}
	p.JitterUnknown = pf.JitterUnknown
	p.LabelNames = pf.LabelNames
	return nil
}

// validHex reports whether s is "#" followed by 3, 4, 6 or 8 hex digits.
func validHex(s string) bool {
	if len(s) < 2 || s[0] != '#' {
		return false
	}
	switch len(s) - 1 {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

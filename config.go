package planes

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// RunConfig holds the window and loop settings used by a windowing backend
// to run a Display. The core itself does not read it.
type RunConfig struct {
	Title         string `yaml:"title" toml:"title"`
	Width         int    `yaml:"width" toml:"width"`
	Height        int    `yaml:"height" toml:"height"`
	Fullscreen    bool   `yaml:"fullscreen" toml:"fullscreen"`
	TPS           int    `yaml:"tps" toml:"tps"`
	ShowFPS       bool   `yaml:"show_fps" toml:"show_fps"`
	Debug         bool   `yaml:"debug" toml:"debug"`
	ScreenshotDir string `yaml:"screenshot_dir" toml:"screenshot_dir"`
	Background    string `yaml:"background" toml:"background"` // "#rrggbb" or "#rrggbbaa"
	// TestScript names a JSON test script (see LoadTestScript) to replay.
	// The backend exits once the script has finished.
	TestScript string `yaml:"test_script" toml:"test_script"`
}

// DefaultRunConfig returns a RunConfig with sensible defaults.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "Planes",
		Width:         640,
		Height:        480,
		TPS:           60,
		ScreenshotDir: "screenshots",
		Background:    "#000000",
	}
}

// LoadRunConfig reads a RunConfig from a YAML (.yaml, .yml) or TOML (.toml)
// file. Fields missing from the file keep their DefaultRunConfig values.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load run config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("load run config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("load run config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load run config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the sizes and the background colour.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.TPS < 0 {
		return fmt.Errorf("invalid tps %d", c.TPS)
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed Background, or black if it is invalid.
func (c RunConfig) BackgroundColor() color.RGBA {
	col, err := ParseHexColor(c.Background)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return col
}

var errBadColor = errors.New("bad hex color")

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (the leading # is optional).
// An empty string is opaque black.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return color.RGBA{A: 0xff}, nil
	}
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

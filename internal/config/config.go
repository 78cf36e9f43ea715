// Package config provides YAML-based configuration loading for snake3d.
//
// Only pacing and presentation are configurable. The grid is fixed at 20 cells
// per axis and is intentionally absent from the file format.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains all configuration for the game and its frontends.
type Config struct {
	Timing Timing `yaml:"timing"`
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Colors Colors `yaml:"colors"`
}

// Timing defines the tick pacing. Values are seconds.
type Timing struct {
	InitialInterval float64 `yaml:"initial_interval"` // Seconds between ticks at the start of a run
	IntervalStep    float64 `yaml:"interval_step"`    // Seconds removed from the interval per fruit
}

// Initial returns the starting tick interval.
func (t Timing) Initial() time.Duration {
	return seconds(t.InitialInterval)
}

// Step returns the per-fruit interval reduction.
func (t Timing) Step() time.Duration {
	return seconds(t.IntervalStep)
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Window defines the 3D window parameters.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// Camera defines the fixed 3D camera. It always looks at the snake's head.
type Camera struct {
	Position [3]float32 `yaml:"position"`
	Up       [3]float32 `yaml:"up"`
	Fovy     float32    `yaml:"fovy"`
}

// Colors defines the palette used by the 3D window.
type Colors struct {
	Background RGBA `yaml:"background"`
	Grid       RGBA `yaml:"grid"`
	Body       RGBA `yaml:"body"`
	Head       RGBA `yaml:"head"`
	Fruit      RGBA `yaml:"fruit"`
	Text       RGBA `yaml:"text"`
	GameOver   RGBA `yaml:"game_over"`
}

// RGBA is a color written in YAML as "#rrggbb" or "#rrggbbaa".
type RGBA struct {
	R, G, B, A uint8
}

// ParseRGBA parses a hex color string.
func ParseRGBA(s string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, fmt.Errorf("config: invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("config: invalid color %q: %w", s, err)
	}
	return RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// String formats the color as "#rrggbbaa".
func (c RGBA) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// UnmarshalYAML decodes a hex color string.
func (c *RGBA) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRGBA(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as a hex string.
func (c RGBA) MarshalYAML() (any, error) {
	return c.String(), nil
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error

	if c.Timing.InitialInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.initial_interval must be positive, got %v", c.Timing.InitialInterval))
	}
	if c.Timing.IntervalStep < 0 {
		errs = append(errs, fmt.Errorf("timing.interval_step must not be negative, got %v", c.Timing.IntervalStep))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("window.fps must be positive, got %d", c.Window.FPS))
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		errs = append(errs, fmt.Errorf("camera.fovy must be in (0, 180), got %v", c.Camera.Fovy))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

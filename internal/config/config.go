// Package config holds the settings shared by the life front ends. Values
// come from defaults, then an optional YAML file, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"lifecanvas/internal/core"
	"lifecanvas/internal/render"
	"lifecanvas/internal/session"
)

// Config represents the runtime parameters of the application.
type Config struct {
	// Width and Height are the drawing surface size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// CellSize is the pixel size of one cell including its gutter.
	CellSize int `yaml:"cell_size"`
	// SpeedMS is the tick interval in milliseconds.
	SpeedMS   int    `yaml:"speed_ms"`
	Color     string `yaml:"color"`
	Seed      int64  `yaml:"seed"`
	Randomize bool   `yaml:"randomize"`
	// Population selects "pretick" or "rendered" population reporting.
	Population string `yaml:"population"`
	// ThrottleMS rate-limits speed and color inputs.
	ThrottleMS int `yaml:"throttle_ms"`
	// Autostart begins ticking as soon as the front end comes up.
	Autostart bool `yaml:"autostart"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      1024,
		Height:     768,
		CellSize:   5,
		SpeedMS:    100,
		Color:      render.DefaultColor,
		Seed:       time.Now().UnixNano(),
		Population: session.PreTick.String(),
		ThrottleMS: 100,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "drawing surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "drawing surface height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.SpeedMS, "speed", c.SpeedMS, "tick interval in milliseconds")
	fs.StringVar(&c.Color, "color", c.Color, "live cell color (#rgb or #rrggbb)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.BoolVar(&c.Randomize, "randomize", c.Randomize, "start with a random grid")
	fs.StringVar(&c.Population, "population", c.Population, "population readout: pretick or rendered")
	fs.IntVar(&c.ThrottleMS, "throttle", c.ThrottleMS, "input throttle window in milliseconds")
	fs.BoolVar(&c.Autostart, "start", c.Autostart, "start running immediately")
}

// Load overlays the YAML file at path onto c. Keys absent from the file keep
// their current values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface %dx%d must be positive", c.Width, c.Height))
	}
	if c.CellSize < 2 {
		errs = append(errs, fmt.Errorf("cell size %d must be at least 2", c.CellSize))
	}
	if c.SpeedMS <= 0 {
		errs = append(errs, fmt.Errorf("speed %dms must be positive", c.SpeedMS))
	}
	if c.ThrottleMS < 0 {
		errs = append(errs, fmt.Errorf("throttle %dms must not be negative", c.ThrottleMS))
	}
	if _, err := render.ParseColor(c.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err := session.ParsePopulationMode(c.Population); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Dimensions returns the grid rows and columns for the surface.
func (c *Config) Dimensions() (rows, cols int) {
	return core.DimensionsFor(c.Width, c.Height, c.CellSize)
}

// Speed returns the tick interval.
func (c *Config) Speed() time.Duration {
	return time.Duration(c.SpeedMS) * time.Millisecond
}

// Throttle returns the input throttle window.
func (c *Config) Throttle() time.Duration {
	return time.Duration(c.ThrottleMS) * time.Millisecond
}

// SessionOptions converts the configuration into session options. Call
// Validate first; an unparsable population mode falls back to PreTick.
func (c *Config) SessionOptions() session.Options {
	rows, cols := c.Dimensions()
	mode, _ := session.ParsePopulationMode(c.Population)
	return session.Options{
		Rows:      rows,
		Cols:      cols,
		CellSize:  c.CellSize,
		Speed:     c.Speed(),
		Color:     c.Color,
		Seed:      c.Seed,
		Mode:      mode,
		Randomize: c.Randomize,
	}
}

// FromArgs builds a Config from defaults, the file named by -config (if
// any) and the remaining flags, in that order of precedence.
func FromArgs(name string, args []string) (*Config, error) {
	path := configPath(args)
	cfg := NewConfig()
	if path != "" {
		if err := cfg.Load(path); err != nil {
			return nil, err
		}
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", path, "YAML config file")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// configPath finds -config before the full parse so file values sit beneath
// explicit flags. LIFE_CONFIG is used when no flag is given.
func configPath(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if !strings.HasPrefix(a, "-") {
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("LIFE_CONFIG")
}

// Package config loads gradviz settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/frame"
	"github.com/katalvlaran/gradviz/grid"
	"github.com/katalvlaran/gradviz/probe"
	"github.com/katalvlaran/gradviz/slice"
)

// Output formats accepted by Output.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalid wraps every validation failure reported by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all gradviz configuration.
type Config struct {
	// Selector state
	Selection SelectionConfig `yaml:"selection"`

	// Sampling
	Grid GridConfig `yaml:"grid"`

	// Output
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SelectionConfig is the initial function, point and arrow scale.
type SelectionConfig struct {
	Function   string  `yaml:"function"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	ArrowScale float64 `yaml:"arrow_scale"`
}

// GridConfig configures the sampling mesh and tangent half-width.
type GridConfig struct {
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
	Resolution int     `yaml:"resolution"`
	HalfWidth  float64 `yaml:"tangent_half_width"`
}

// OutputConfig selects the frame encoding.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, yaml
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the initial selector state on the 50×50 grid.
func DefaultConfig() *Config {
	in := frame.DefaultInput()

	return &Config{
		Selection: SelectionConfig{
			Function:   string(in.Function),
			X:          in.Point.X,
			Y:          in.Point.Y,
			ArrowScale: in.ArrowScale,
		},
		Grid: GridConfig{
			Min:        grid.DefaultMin,
			Max:        grid.DefaultMax,
			Resolution: grid.DefaultResolution,
			HalfWidth:  slice.DefaultHalfWidth,
		},
		Output:  OutputConfig{Format: FormatText},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults;
// environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies GRADVIZ_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("GRADVIZ_FUNCTION"); v != "" {
		c.Selection.Function = v
	}
	if v := os.Getenv("GRADVIZ_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("GRADVIZ_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"GRADVIZ_X", &c.Selection.X},
		{"GRADVIZ_Y", &c.Selection.Y},
		{"GRADVIZ_ARROW_SCALE", &c.Selection.ArrowScale},
	}
	for _, f := range floats {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", f.key, err)
		}
		*f.dst = n
	}

	if v := os.Getenv("GRADVIZ_RESOLUTION"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("failed to parse GRADVIZ_RESOLUTION: %w", err)
		}
		c.Grid.Resolution = n
	}

	return nil
}

// Validate checks the configuration and joins every violation under ErrInvalid.
// Output.Format is lower-cased and trimmed in place first.
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))

	var errs []error
	if _, err := field.ParseID(c.Selection.Function); err != nil {
		errs = append(errs, err)
	}
	if _, err := probe.NewPoint(c.Selection.X, c.Selection.Y); err != nil {
		errs = append(errs, err)
	}
	if err := probe.ValidateArrowScale(c.Selection.ArrowScale); err != nil {
		errs = append(errs, err)
	}
	if _, err := grid.Linspace(c.Grid.Min, c.Grid.Max, c.Grid.Resolution); err != nil {
		errs = append(errs, err)
	}
	if err := c.FrameOptions().Validate(); err != nil {
		errs = append(errs, err)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q", c.Output.Format))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Input converts the selection into a frame input, snapping coordinates and
// arrow scale onto the selector steps.
func (c *Config) Input() (frame.Input, error) {
	id, err := field.ParseID(c.Selection.Function)
	if err != nil {
		return frame.Input{}, err
	}

	return frame.Input{
		Function: id,
		Point: probe.Point{
			X: probe.Snap(c.Selection.X, probe.CoordStep),
			Y: probe.Snap(c.Selection.Y, probe.CoordStep),
		},
		ArrowScale: probe.Snap(c.Selection.ArrowScale, probe.ArrowScaleStep),
	}, nil
}

// FrameOptions converts the grid section into pipeline options.
func (c *Config) FrameOptions() frame.Options {
	return frame.Options{
		Grid: grid.Options{
			Min:        c.Grid.Min,
			Max:        c.Grid.Max,
			Resolution: c.Grid.Resolution,
		},
		HalfWidth: c.Grid.HalfWidth,
	}
}

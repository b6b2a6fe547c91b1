// SPDX-License-Identifier: MIT

// Package config loads lvshape settings.
//
// Sources are applied in order, later ones winning:
//
//	Default() → YAML file → LVSHAPE_* environment → command-line flags
//
// Flags are applied by the caller; Load covers the first three and then
// validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvshape/geom"
	"github.com/katalvlaran/lvshape/query"
)

// Environment variables read by Load.
const (
	EnvInput     = "LVSHAPE_INPUT"
	EnvLogLevel  = "LVSHAPE_LOG_LEVEL"
	EnvLogFormat = "LVSHAPE_LOG_FORMAT"
	EnvCutPlane  = "LVSHAPE_CUT_PLANE"
	EnvCutOffset = "LVSHAPE_CUT_OFFSET"
	EnvSort      = "LVSHAPE_SORT"
)

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Input string `yaml:"input"`
	Log   Log    `yaml:"log"`
	Cut   Cut    `yaml:"cut"`
	Sort  string `yaml:"sort"`
}

// Log selects the zap logger flavour.
type Log struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // json|console
}

// Cut describes the plane used for the pyramid cut ratio in reports.
// The plane value is point1's coordinate on the plane's normal axis plus Offset.
type Cut struct {
	Plane  string  `yaml:"plane"`
	Offset float64 `yaml:"offset"`
}

// Default returns the built-in configuration: the XY plane one unit above
// point1, console logs at warn level, shapes ordered by id.
func Default() *Config {
	return &Config{
		Input: "shapes.txt",
		Log:   Log{Level: "warn", Format: FormatConsole},
		Cut:   Cut{Plane: geom.PlaneXY.String(), Offset: 1},
		Sort:  "id",
	}
}

// Load builds a Config from defaults, the YAML file at path and the
// environment, then validates it. An empty path or a missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults stand
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from LVSHAPE_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvInput); ok {
		c.Input = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvCutPlane); ok {
		c.Cut.Plane = v
	}
	if v, ok := lookup(EnvCutOffset); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvCutOffset, v, err)
		}
		c.Cut.Offset = f
	}
	if v, ok := lookup(EnvSort); ok {
		c.Sort = v
	}
	return nil
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatJSON, FormatConsole:
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	if _, err := geom.ParsePlane(c.Cut.Plane); err != nil {
		return fmt.Errorf("%w: cut.plane %q", ErrInvalidConfig, c.Cut.Plane)
	}
	if _, err := query.ParseComparator(c.Sort); err != nil {
		return fmt.Errorf("%w: sort %q", ErrInvalidConfig, c.Sort)
	}
	return nil
}

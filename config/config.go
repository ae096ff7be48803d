// SPDX-License-Identifier: MIT

// Package config holds the settings of the gridreduce command.
//
// Settings are read from an optional YAML file, then overridden by
// GRIDREDUCE_* environment variables, then by command-line flags.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate and Load for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Log levels and formats accepted by LogConfig.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatConsole = "console"
	FormatJSON    = "json"
	FormatText    = "text"
)

// MaxPrecision is the largest useful number of significant digits for a float64.
const MaxPrecision = 17

// Config is the full command configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Output   OutputConfig   `yaml:"output"`
	Symmetry SymmetryConfig `yaml:"symmetry"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is console or json.
	Format string `yaml:"format"`
}

// OutputConfig controls the report.
type OutputConfig struct {
	// Format is text or json.
	Format string `yaml:"format"`
	// Precision is the number of significant digits printed per component.
	Precision int `yaml:"precision"`
}

// SymmetryConfig controls the post-build symmetry check.
type SymmetryConfig struct {
	// Tolerance is the largest accepted |Y[i,j] - Y[j,i]|.
	Tolerance float64 `yaml:"tolerance"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:      LogConfig{Level: LevelWarn, Format: FormatConsole},
		Output:   OutputConfig{Format: FormatText, Precision: 6},
		Symmetry: SymmetryConfig{Tolerance: 1e-9},
	}
}

// Load reads path on top of Default and applies environment overrides. An
// empty path skips the file. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from GRIDREDUCE_LOG_LEVEL, GRIDREDUCE_LOG_FORMAT,
// GRIDREDUCE_OUTPUT_FORMAT, GRIDREDUCE_OUTPUT_PRECISION and
// GRIDREDUCE_SYMMETRY_TOLERANCE. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("GRIDREDUCE_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("GRIDREDUCE_LOG_FORMAT"); ok && v != "" {
		c.Log.Format = v
	}
	if v, ok := lookup("GRIDREDUCE_OUTPUT_FORMAT"); ok && v != "" {
		c.Output.Format = v
	}
	if v, ok := lookup("GRIDREDUCE_OUTPUT_PRECISION"); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: GRIDREDUCE_OUTPUT_PRECISION=%q: %w", v, ErrInvalid)
		}
		c.Output.Precision = p
	}
	if v, ok := lookup("GRIDREDUCE_SYMMETRY_TOLERANCE"); ok && v != "" {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: GRIDREDUCE_SYMMETRY_TOLERANCE=%q: %w", v, ErrInvalid)
		}
		c.Symmetry.Tolerance = tol
	}

	return nil
}

// Validate checks every field and reports the first offending one.
func (c Config) Validate() error {
	switch c.Log.Level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("config: log.format %q: %w", c.Log.Format, ErrInvalid)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("config: output.format %q: %w", c.Output.Format, ErrInvalid)
	}
	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("config: output.precision %d not in [0,%d]: %w", c.Output.Precision, MaxPrecision, ErrInvalid)
	}
	tol := c.Symmetry.Tolerance
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return fmt.Errorf("config: symmetry.tolerance %v: %w", tol, ErrInvalid)
	}

	return nil
}

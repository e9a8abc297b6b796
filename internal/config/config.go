// Package config loads the thermocore CLI configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thermocore/casm"
	"github.com/katalvlaran/thermocore/geometry"
	"github.com/katalvlaran/thermocore/hull"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every tunable the CLI passes down to the libraries.
type Config struct {
	Tolerance     float64 `yaml:"tolerance"`      // lower-hull and vertical-facet tolerance
	LPTolerance   float64 `yaml:"lp_tolerance"`   // bounds-check LP tolerance
	HullEpsilon   float64 `yaml:"hull_epsilon"`   // hull builder relative epsilon
	Workers       int     `yaml:"workers"`        // per-row parallelism
	Format        string  `yaml:"format"`         // json | yaml | cbor | text
	LogLevel      string  `yaml:"log_level"`      // zerolog level name
	LogFormat     string  `yaml:"log_format"`     // console | json
	ZeroTolerance float64 `yaml:"zero_tolerance"` // ECI zero-out threshold
}

// Formats lists the accepted output formats.
var Formats = []string{"json", "yaml", "cbor", "text"}

// LogFormats lists the accepted log formats.
var LogFormats = []string{"console", "json"}

// Defaults returns the library defaults with text output and console logs
// at info level.
func Defaults() Config {
	return Config{
		Tolerance:     geometry.DefaultTolerance,
		LPTolerance:   geometry.DefaultLPTolerance,
		HullEpsilon:   hull.DefaultEpsilon,
		Workers:       geometry.DefaultWorkers,
		Format:        "text",
		LogLevel:      "info",
		LogFormat:     "console",
		ZeroTolerance: casm.DefaultZeroTolerance,
	}
}

// Load reads path over Defaults. An empty path returns Defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Defaults, rejecting unknown fields, and validates
// the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"tolerance", c.Tolerance},
		{"lp_tolerance", c.LPTolerance},
		{"hull_epsilon", c.HullEpsilon},
		{"zero_tolerance", c.ZeroTolerance},
	} {
		if f.v < 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be a finite non-negative number, got %v", ErrInvalid, f.name, f.v)
		}
	}
	if c.HullEpsilon == 0 || c.LPTolerance == 0 {
		return fmt.Errorf("%w: hull_epsilon and lp_tolerance must be positive", ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}
	if !contains(Formats, c.Format) {
		return fmt.Errorf("%w: format %q, want one of %s", ErrInvalid, c.Format, strings.Join(Formats, ", "))
	}
	if !contains(LogFormats, c.LogFormat) {
		return fmt.Errorf("%w: log_format %q, want one of %s", ErrInvalid, c.LogFormat, strings.Join(LogFormats, ", "))
	}
	if _, err := zerologLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}

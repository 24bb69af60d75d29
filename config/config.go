// Package config loads gammapath job settings from YAML.
//
// A job file looks like:
//
//	input: data/97rb_b-.ens
//	nuclide: 97Sr
//	daughter: 97SR
//	tolerance: 1.0
//	output_dir: paths
//	tie_break: closest
//	workers: 4
//	fail_on_error: true
//
// Missing keys keep the values of Default. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gammapath/decay"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is a reconstruction job.
type Config struct {
	Input       string  `yaml:"input"`
	Nuclide     string  `yaml:"nuclide"`
	Daughter    string  `yaml:"daughter"`
	Tolerance   float64 `yaml:"tolerance"`
	OutputDir   string  `yaml:"output_dir"`
	TieBreak    string  `yaml:"tie_break"`
	MaxSteps    int     `yaml:"max_steps"`
	Workers     int     `yaml:"workers"`
	Strict      bool    `yaml:"strict"`
	FailOnError bool    `yaml:"fail_on_error"`
}

// Default returns the settings used when neither a file nor a flag sets a value.
func Default() Config {
	return Config{
		Tolerance: decay.DefaultTolerance,
		OutputDir: ".",
		TieBreak:  decay.Closest.String(),
		Workers:   1,
	}
}

// Load reads path and overlays it on Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads YAML from r and overlays it on Default. An empty document
// yields Default.
func Decode(r io.Reader) (Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks field ranges. It does not touch the filesystem.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input is required", ErrInvalidConfig)
	case c.Daughter == "":
		return fmt.Errorf("%w: daughter is required", ErrInvalidConfig)
	case !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0):
		return fmt.Errorf("%w: tolerance must be positive, got %g", ErrInvalidConfig, c.Tolerance)
	case c.MaxSteps < 0:
		return fmt.Errorf("%w: max_steps must not be negative", ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	if _, err := decay.ParseTieBreak(c.TieBreak); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// OutputNuclide returns Nuclide, or Daughter when Nuclide is unset.
func (c Config) OutputNuclide() string {
	if c.Nuclide != "" {
		return c.Nuclide
	}

	return c.Daughter
}

// DecayOptions translates the job into reconstruction options.
func (c Config) DecayOptions() ([]decay.Option, error) {
	tb, err := decay.ParseTieBreak(c.TieBreak)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return []decay.Option{
		decay.WithTolerance(c.Tolerance),
		decay.WithTieBreak(tb),
		decay.WithMaxSteps(c.MaxSteps),
		decay.WithWorkers(c.Workers),
	}, nil
}

// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the quadra CLI and turns it
// into integral options.
//
//	log-level: info
//	log-file: /var/log/quadra/quadra.log
//	integral:
//	  strategy: grid-slices
//	  precision: 3
//	  target-error: 1e-12
//	  strict: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quadra/integral"
	"github.com/katalvlaran/quadra/logger"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root document.
type Config struct {
	LogFile  string   `yaml:"log-file"`
	LogLevel string   `yaml:"log-level"`
	Integral Integral `yaml:"integral"`
}

// Integral mirrors the integral.Option set. Zero values mean "library
// default" except where noted.
type Integral struct {
	Strategy        string    `yaml:"strategy"`
	Precision       int       `yaml:"precision"` // 0: deltas 1e-3, target 1e-10
	Deltas          []float64 `yaml:"deltas"`
	TargetError     float64   `yaml:"target-error"`
	MaxLevel        int       `yaml:"max-level"`
	SampleDelta     bool      `yaml:"sample-delta"`
	SliceQuadrature bool      `yaml:"slice-quadrature"`
	Optimized2D     bool      `yaml:"optimized-2d"` // default true
	Strict          bool      `yaml:"strict"`
}

// DefaultConfig returns the values Load starts from.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warning",
		Integral: Integral{
			Strategy:    integral.Auto.String(),
			Optimized2D: true,
		},
	}
}

// Load reads and validates the file at path on top of DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML document on top of DefaultConfig.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks every field without building anything.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level %q", ErrInvalid, c.LogLevel)
	}

	in := c.Integral
	if _, err := integral.ParseStrategy(in.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if in.Precision != 0 && (in.Precision < integral.MinPrecision || in.Precision > integral.MaxPrecision) {
		return fmt.Errorf("%w: precision %d outside [%d, %d]", ErrInvalid, in.Precision, integral.MinPrecision, integral.MaxPrecision)
	}
	for i, d := range in.Deltas {
		if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
			return fmt.Errorf("%w: deltas[%d] = %g", ErrInvalid, i, d)
		}
	}
	if math.IsNaN(in.TargetError) || math.IsInf(in.TargetError, 0) || in.TargetError < 0 {
		return fmt.Errorf("%w: target-error %g", ErrInvalid, in.TargetError)
	}
	if in.MaxLevel < 0 {
		return fmt.Errorf("%w: max-level %d", ErrInvalid, in.MaxLevel)
	}

	return nil
}

// Options converts the integral section. Precision is applied before
// target-error and deltas so explicit values win.
func (c *Config) Options() ([]integral.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	in := c.Integral
	s, _ := integral.ParseStrategy(in.Strategy)
	opts := []integral.Option{
		integral.WithStrategy(s),
		integral.WithOptimized2D(in.Optimized2D),
	}
	if in.Precision != 0 {
		opts = append(opts, integral.WithPrecision(in.Precision))
	}
	if in.TargetError > 0 {
		opts = append(opts, integral.WithTargetError(in.TargetError))
	}
	if len(in.Deltas) > 0 {
		opts = append(opts, integral.WithDeltas(in.Deltas...))
	}
	if in.MaxLevel > 0 {
		opts = append(opts, integral.WithMaxLevel(in.MaxLevel))
	}
	if in.SampleDelta {
		opts = append(opts, integral.WithSampleDeltaMode())
	}
	if in.SliceQuadrature {
		opts = append(opts, integral.WithSliceQuadrature())
	}
	if in.Strict {
		opts = append(opts, integral.WithStrictError())
	}

	return opts, nil
}

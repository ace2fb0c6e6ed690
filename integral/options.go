// SPDX-License-Identifier: MIT

package integral

import (
	"math"

	"github.com/katalvlaran/quadra/quad"
)

const (
	// DefaultPrecision gives deltas of 1e-3 on every axis.
	DefaultPrecision = 3

	// MinPrecision and MaxPrecision bound the accepted precision levels.
	MinPrecision = 0
	MaxPrecision = 15
)

// Options configures an Integrator.
type Options struct {
	strategy        Strategy
	sampleDelta     bool
	sliceQuadrature bool
	optimized2D     bool
	strict          bool
	targetError     float64
	maxLevel        int
	precision       int
	deltas          []float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration New starts from: automatic
// strategy, optimized 2-D path, precision level 3, tanh-sinh defaults.
func DefaultOptions() Options {
	return Options{
		strategy:    Auto,
		optimized2D: true,
		targetError: quad.DefaultTargetError,
		maxLevel:    quad.DefaultMaxLevel,
		precision:   DefaultPrecision,
	}
}

// WithStrategy forces a strategy tag.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// WithSampleDeltaMode expresses 1-D precision as a step: Trapezoid1D.
func WithSampleDeltaMode() Option {
	return func(o *Options) { o.sampleDelta = true }
}

// WithSliceQuadrature selects GridSlices for dimensions ≥ 2.
func WithSliceQuadrature() Option {
	return func(o *Options) { o.sliceQuadrature = true }
}

// WithOptimized2D toggles the specialized 2-D path (on by default).
func WithOptimized2D(on bool) Option {
	return func(o *Options) { o.optimized2D = on }
}

// WithStrictError makes a quadrature estimate above target an error.
func WithStrictError() Option {
	return func(o *Options) { o.strict = true }
}

// WithTargetError sets the tanh-sinh absolute error target.
// Panics on NaN, ±Inf or a non-positive value.
func WithTargetError(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic("integral: WithTargetError requires a positive finite value")
	}

	return func(o *Options) { o.targetError = eps }
}

// WithMaxLevel caps the tanh-sinh refinement depth. Panics if n < 1.
func WithMaxLevel(n int) Option {
	if n < 1 {
		panic("integral: WithMaxLevel requires n >= 1")
	}

	return func(o *Options) { o.maxLevel = n }
}

// WithPrecision sets deltas and target to 10^-level, as
// SetRequestedPrecision does. Panics outside [MinPrecision, MaxPrecision].
func WithPrecision(level int) Option {
	if level < MinPrecision || level > MaxPrecision {
		panic("integral: WithPrecision level out of range")
	}

	return func(o *Options) {
		o.precision = level
		o.deltas = nil
		o.targetError = math.Pow(10, -float64(level))
	}
}

// WithDeltas sets explicit per-axis deltas. Their count and values are
// validated by New.
func WithDeltas(d ...float64) Option {
	return func(o *Options) { o.deltas = append([]float64(nil), d...) }
}

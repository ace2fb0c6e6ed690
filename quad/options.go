// SPDX-License-Identifier: MIT

package quad

import "math"

const (
	// DefaultTargetError is the absolute error an Integrator aims for when
	// WithTargetError is not given.
	DefaultTargetError = 1e-10

	// DefaultMaxLevel uses every level of the shared table.
	DefaultMaxLevel = TableLevels - 1
)

// Options configures an Integrator.
type Options struct {
	targetError float64
	maxLevel    int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration New starts from.
func DefaultOptions() Options {
	return Options{
		targetError: DefaultTargetError,
		maxLevel:    DefaultMaxLevel,
	}
}

// WithTargetError sets the absolute error the refinement stops at.
// Panics on NaN, ±Inf or a non-positive value.
func WithTargetError(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic("quad: WithTargetError requires a positive finite value")
	}

	return func(o *Options) { o.targetError = eps }
}

// WithMaxLevel caps the refinement depth. Values beyond the table are clamped
// at integration time. Panics if n < 1.
func WithMaxLevel(n int) Option {
	if n < 1 {
		panic("quad: WithMaxLevel requires n >= 1")
	}

	return func(o *Options) { o.maxLevel = n }
}

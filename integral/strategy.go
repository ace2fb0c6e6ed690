// SPDX-License-Identifier: MIT

package integral

import "fmt"

// Strategy tags the algorithm an Integrator runs. It is fixed at construction.
type Strategy int

const (
	// Auto lets New derive the strategy from the dimension and options.
	Auto Strategy = iota

	// Adaptive1D integrates one axis by tanh-sinh to an error target.
	Adaptive1D

	// Trapezoid1D integrates one axis by trapezoid doubling down to the delta.
	Trapezoid1D

	// Midpoint2D is the specialized two-axis midpoint rule.
	Midpoint2D

	// GridMidpoint runs the odometer engine over midpoint cells.
	GridMidpoint

	// GridSlices runs the odometer over all axes but the last and integrates
	// the last axis of every outer cell by tanh-sinh.
	GridSlices
)

var strategyNames = map[Strategy]string{
	Auto:         "auto",
	Adaptive1D:   "adaptive-1d",
	Trapezoid1D:  "trapezoid-1d",
	Midpoint2D:   "midpoint-2d",
	GridMidpoint: "grid-midpoint",
	GridSlices:   "grid-slices",
}

// String returns the kebab-case name used by the CLI and configuration.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy is the inverse of String.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return Auto, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Supports reports whether s can integrate a field of dimension dim.
func (s Strategy) Supports(dim int) bool {
	switch s {
	case Adaptive1D, Trapezoid1D:
		return dim == 1
	case Midpoint2D:
		return dim == 2
	case GridMidpoint:
		return dim >= 1
	case GridSlices:
		return dim >= 2
	default:
		return false
	}
}

// selectStrategy resolves Auto and validates a forced tag.
func selectStrategy(dim int, o Options) (Strategy, error) {
	if o.strategy != Auto {
		if !o.strategy.Supports(dim) {
			return Auto, fmt.Errorf("%w: %s with %d axes", ErrStrategyDimension, o.strategy, dim)
		}

		return o.strategy, nil
	}

	switch {
	case dim == 1 && o.sampleDelta:
		return Trapezoid1D, nil
	case dim == 1:
		return Adaptive1D, nil
	case o.sliceQuadrature:
		return GridSlices, nil
	case dim == 2 && o.optimized2D:
		return Midpoint2D, nil
	default:
		return GridMidpoint, nil
	}
}

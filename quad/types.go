// SPDX-License-Identifier: MIT

package quad

import (
	"errors"
	"math"
)

// ErrBadStep is returned by Trapezoid when the sample step is not a
// positive finite number.
var ErrBadStep = errors.New("quad: sample step must be positive and finite")

// ErrorEvaluation is the metadata returned alongside every quadrature value.
type ErrorEvaluation struct {
	// Estimate approximates |true integral − returned value|.
	Estimate float64

	// Evaluations counts calls of the integrand.
	Evaluations int
}

// Within reports whether the estimate does not exceed target.
func (e ErrorEvaluation) Within(target float64) bool {
	return e.Estimate <= target
}

// Add combines two evaluations of disjoint pieces of one integral:
// estimates and counts both add up.
func (e ErrorEvaluation) Add(o ErrorEvaluation) ErrorEvaluation {
	return ErrorEvaluation{
		Estimate:    e.Estimate + o.Estimate,
		Evaluations: e.Evaluations + o.Evaluations,
	}
}

// Scale multiplies the estimate by |s|, e.g. by the volume of the outer cell
// a slice integral is weighted with.
func (e ErrorEvaluation) Scale(s float64) ErrorEvaluation {
	e.Estimate *= math.Abs(s)

	return e
}

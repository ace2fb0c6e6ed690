// SPDX-License-Identifier: MIT

package quad

import (
	"math"

	"github.com/katalvlaran/quadra/integrand"
)

// maxTrapezoidDoublings caps Trapezoid at 2^24 panels.
const maxTrapezoidDoublings = 24

// Trapezoid approximates ∫_lo^hi f by trapezoid refinement: starting from a
// single panel, the panel width is halved (reusing every previous sample)
// until it is no wider than step.
//
// The estimate is the Richardson term |T_k − T_{k−1}|/3; it is +Inf when no
// refinement was needed. Unlike Integrate, f is sampled at lo and hi.
//
// Returns ErrBadStep for a non-positive, NaN or infinite step.
// lo >= hi yields 0 without evaluating f.
func Trapezoid(f integrand.Func, lo, hi, step float64) (float64, ErrorEvaluation, error) {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return 0, ErrorEvaluation{}, ErrBadStep
	}
	if !(lo < hi) {
		return 0, ErrorEvaluation{}, nil
	}

	m := NewMapper(f, lo, hi)
	h := 2.0 // panel width in t
	sum := 0.5 * (m.Eval(-1) + m.Eval(1))
	evals := 2
	value := h * sum
	estimate := math.Inf(1)

	panels := 1
	for k := 0; h*m.Slope > step; k++ {
		if k == maxTrapezoidDoublings {
			log.Warningf("trapezoid [%g, %g]: stopped at %d panels, width %.3e > step %.3e", lo, hi, panels, h*m.Slope, step)
			break
		}
		h /= 2
		for i := 0; i < panels; i++ {
			sum += m.Eval(-1 + float64(2*i+1)*h)
		}
		evals += panels
		panels *= 2

		next := h * sum
		estimate = math.Abs(next-value) / 3
		value = next
	}

	return value * m.Slope, ErrorEvaluation{Estimate: estimate * m.Slope, Evaluations: evals}, nil
}

// SPDX-License-Identifier: MIT

package quad

import (
	"math"

	"github.com/katalvlaran/quadra/integrand"
	"github.com/katalvlaran/quadra/logger"
)

// quadraticLo and quadraticHi bound log(delta)/log(prevDelta) when the
// refinement is in its quadratic regime.
const (
	quadraticLo = 1.9
	quadraticHi = 2.1

	// stopFactor: refinement stops once estimate·slope < target·stopFactor.
	stopFactor = 0.1
)

var log = logger.MustGetLogger("quad")

// Integrator is a reusable tanh-sinh configuration. The zero value is not
// usable; construct it with New. Integrator values are immutable and safe
// for concurrent use.
type Integrator struct {
	opts Options
}

// New builds an Integrator from DefaultOptions and opts.
func New(opts ...Option) Integrator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return Integrator{opts: o}
}

// TargetError returns the configured absolute error target.
func (q Integrator) TargetError() float64 { return q.opts.targetError }

// MaxLevel returns the configured refinement cap.
func (q Integrator) MaxLevel() int { return q.opts.maxLevel }

// Integrate approximates ∫_lo^hi f with the configured target.
func (q Integrator) Integrate(f integrand.Func, lo, hi float64) (float64, ErrorEvaluation) {
	return integrate(f, lo, hi, q.opts.targetError, q.opts.maxLevel)
}

// Integrate approximates ∫_lo^hi f(x) dx by adaptive tanh-sinh quadrature,
// refining until the error estimate drops below target or the level table
// is exhausted.
//
// A target that is not positive (or NaN) never satisfies the stop test, so
// every level is used unless two levels agree exactly.
//
// lo >= hi yields 0 without evaluating f.
func Integrate(f integrand.Func, lo, hi, target float64) (float64, ErrorEvaluation) {
	return integrate(f, lo, hi, target, DefaultMaxLevel)
}

// integrate is the tanh-sinh driver.
//
// Implementation:
//   - Stage 1: level 0 = midpoint sample plus every tabulated t = j·h₀.
//   - Stage 2: each level k adds only its new abscissas; the running value is
//     halved (the step halved) and the new contribution added.
//   - Stage 3: delta = |½·previous − contribution|; if log(delta)/log(prevDelta)
//     lies in [1.9, 2.1] convergence is quadratic and delta² is the estimate.
//   - Stage 4: scale value and estimate back by the mapper slope.
//
// Mirrored samples sit at lo + Slope·D and hi − Slope·D; one that rounds onto
// a bound is skipped, so f is never evaluated at lo or hi.
func integrate(f integrand.Func, lo, hi, target float64, maxLevel int) (float64, ErrorEvaluation) {
	if !(lo < hi) {
		return 0, ErrorEvaluation{}
	}

	tbl := Levels()
	if maxLevel > tbl.Len()-1 {
		maxLevel = tbl.Len() - 1
	}
	m := NewMapper(f, lo, hi)
	slope := math.Abs(m.Slope)

	evals := 1
	sum := midWeight * m.Eval(0)
	for _, n := range tbl.levels[0] {
		v, c := m.sumPair(n)
		sum += v
		evals += c
	}
	value := tbl.Step(0) * sum

	estimate := math.Inf(1)
	prevDelta := 0.0
	level := 0
	for k := 1; k <= maxLevel; k++ {
		level = k
		sum = 0
		for _, n := range tbl.levels[k] {
			v, c := m.sumPair(n)
			sum += v
			evals += c
		}
		contribution := tbl.Step(k) * sum
		delta := math.Abs(0.5*value - contribution)
		value = 0.5*value + contribution

		estimate = delta
		if prevDelta > 0 && delta > 0 {
			r := math.Log(delta) / math.Log(prevDelta)
			if r >= quadraticLo && r <= quadraticHi {
				estimate = delta * delta
			}
		}
		log.Debugf("level %d: value=%.17g delta=%.3e estimate=%.3e", k, value*m.Slope, delta, estimate*slope)

		if delta == 0 || estimate*slope < target*stopFactor {
			break
		}
		prevDelta = delta
	}

	ev := ErrorEvaluation{Estimate: estimate * slope, Evaluations: evals}
	if target > 0 && !ev.Within(target) {
		log.Warningf("[%g, %g]: estimate %.3e above target %.3e after %d levels", lo, hi, ev.Estimate, target, level)
	}

	return value * m.Slope, ev
}

// SPDX-License-Identifier: MIT

package quad

import "github.com/katalvlaran/quadra/integrand"

// Mapper is the LinearDomainMapper: the affine map between an interval
// [lo, hi] and the standardized domain [−1, 1] of the tabulated rules.
//
//	x = Intercept + Slope·t,  Slope = (hi−lo)/2,  Intercept = (hi+lo)/2
//
// An integral over [−1, 1] of Eval, multiplied by Slope, equals the integral
// of the original function over [lo, hi].
type Mapper struct {
	Slope     float64
	Intercept float64
	lo, hi    float64
	f         integrand.Func
}

// NewMapper binds f to the interval [lo, hi].
func NewMapper(f integrand.Func, lo, hi float64) Mapper {
	return Mapper{
		Slope:     (hi - lo) / 2,
		Intercept: (hi + lo) / 2,
		lo:        lo,
		hi:        hi,
		f:         f,
	}
}

// X returns the original-domain coordinate of t.
func (m Mapper) X(t float64) float64 { return m.Intercept + m.Slope*t }

// Eval evaluates the original function at the image of t.
func (m Mapper) Eval(t float64) float64 { return m.f(m.Intercept + m.Slope*t) }

// Pair returns the images of −(1−d) and 1−d, measured inward from the bounds
// as lo + Slope·d and hi − Slope·d. Either may round onto its bound when d is
// tiny relative to the interval; callers skip those.
func (m Mapper) Pair(d float64) (left, right float64) {
	return m.lo + m.Slope*d, m.hi - m.Slope*d
}

// sumPair adds w·f over the inward images of d that stay strictly inside the
// interval and reports how many samples were taken.
func (m Mapper) sumPair(n Node) (float64, int) {
	left, right := m.Pair(n.D)
	s, evals := 0.0, 0
	if left > m.lo {
		s += m.f(left)
		evals++
	}
	if right < m.hi {
		s += m.f(right)
		evals++
	}

	return n.W * s, evals
}

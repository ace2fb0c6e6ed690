// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/quadra/grid"
	"github.com/katalvlaran/quadra/integral"
	"github.com/katalvlaran/quadra/numeric"
)

// Corrector supplies the residual of an N-D evaluation: the integral over
// the box [base, point] minus the box [base, anchor] already in the table.
type Corrector[T any] interface {
	Correct(base, anchor, point []float64) (T, error)
}

// NDAntiDerivative evaluates F(p) = ∫_{base}^{p} f over a box from a Table
// and a Corrector.
type NDAntiDerivative[T any] struct {
	table     *Table[T]
	corrector Corrector[T]
	engine    *grid.Engine[T]
	ar        numeric.Arithmetic[T]
}

// NewNDAntiDerivative binds table, corrector and arithmetic. A nil corrector
// evaluates the table part only.
func NewNDAntiDerivative[T any](table *Table[T], corrector Corrector[T], ar numeric.Arithmetic[T]) *NDAntiDerivative[T] {
	return &NDAntiDerivative[T]{
		table:     table,
		corrector: corrector,
		engine:    grid.NewEngine(ar),
		ar:        ar,
	}
}

// Eval returns F(point).
//
// Errors: ErrDimensionMismatch, ErrNotCovered when a coordinate lies below
// its axis base, and any corrector error.
func (a *NDAntiDerivative[T]) Eval(point []float64) (T, error) {
	t := a.table
	k := t.Dim()
	if len(point) != k {
		return a.ar.Zero(), splineErrorf("Eval", ErrDimensionMismatch)
	}

	matched := make([]int, k)
	anchor := make([]float64, k)
	for i, p := range point {
		if p < t.bases[i] {
			return a.ar.Zero(), splineErrorf("Eval", fmt.Errorf("%w: axis %d, %g < %g", ErrNotCovered, i, p, t.bases[i]))
		}
		m, anc := locate(t.bases[i], t.uppers[i], p)
		matched[i], anchor[i] = m, anc
	}

	sum := a.engine.Accumulate(grid.Ranges[T]{
		Limits: matched,
		Value:  func(c []int) T { return t.cells[grid.Offset(t.shape, c)] },
	}, make([]int, k))

	if a.corrector == nil {
		return sum, nil
	}
	corr, err := a.corrector.Correct(t.bases, anchor, point)
	if err != nil {
		return a.ar.Zero(), splineErrorf("Eval", err)
	}

	return a.ar.Add(sum, corr), nil
}

// locate returns how many upper bounds are ≤ p and the last of them (base
// when none is).
func locate(base float64, uppers []float64, p float64) (int, float64) {
	m := sort.SearchFloat64s(uppers, p)
	if m < len(uppers) && uppers[m] == p {
		m++
	}
	if m == 0 {
		return 0, base
	}

	return m, uppers[m-1]
}

// IntegralCorrector integrates the residual with an integral.Integrator.
//
// The box [base, point] splits per axis into [base, anchor] and
// [anchor, point]; of the 2^k products, the all-[base, anchor] one is the
// table sum and the other 2^k − 1 are integrated here. Boxes with an empty
// side are skipped, so a point on table bounds costs no evaluation.
type IntegralCorrector[T any] struct {
	in *integral.Integrator
	ar numeric.Arithmetic[T]
}

// NewIntegralCorrector wraps in, whose field must match the table.
func NewIntegralCorrector[T any](in *integral.Integrator, ar numeric.Arithmetic[T]) *IntegralCorrector[T] {
	return &IntegralCorrector[T]{in: in, ar: ar}
}

// Correct sums the residual boxes.
func (c *IntegralCorrector[T]) Correct(base, anchor, point []float64) (T, error) {
	k := len(point)
	if len(base) != k || len(anchor) != k || c.in.Dim() != k {
		return c.ar.Zero(), ErrDimensionMismatch
	}

	lo := make([]float64, k)
	hi := make([]float64, k)
	sum := 0.0
	boxes := 0
	for mask := 1; mask < 1<<k; mask++ {
		empty := false
		for i := 0; i < k && !empty; i++ {
			if mask&(1<<i) != 0 {
				lo[i], hi[i] = anchor[i], point[i]
			} else {
				lo[i], hi[i] = base[i], anchor[i]
			}
			empty = !(lo[i] < hi[i])
		}
		if empty {
			continue
		}
		v, err := c.in.ComputeApproximationN(lo, hi)
		if err != nil {
			return c.ar.Zero(), err
		}
		sum += v
		boxes++
	}
	log.Debugf("correction over %d boxes: %g", boxes, sum)

	return c.ar.FromFloat64(sum), nil
}

// SPDX-License-Identifier: MIT

package grid

import (
	"github.com/katalvlaran/quadra/quad"
)

// Ranges walks the index ranges [start_i, Limits[i]) and asks Value for each
// portion. It is the manager used for table lookups.
type Ranges[T any] struct {
	Limits []int
	Value  func(cursor []int) T
}

func (r Ranges[T]) IsPortionComplete(cursor []int, axis int) bool {
	return cursor[axis] >= r.Limits[axis]
}

func (r Ranges[T]) Advance(axis int, cursor []int) { cursor[axis]++ }

func (r Ranges[T]) ContributionFor(cursor []int) T { return r.Value(cursor) }

// Dense is the midpoint-rule manager: each cell contributes
// f(cellMidpoint)·cellVolume.
//
// A Dense holds a scratch point and must not be shared by concurrent
// accumulations.
type Dense struct {
	box    Box
	f      func(p []float64) float64
	point  []float64
	volume float64
}

// NewDense binds f to the cells of box.
func NewDense(box Box, f func(p []float64) float64) *Dense {
	return &Dense{
		box:    box,
		f:      f,
		point:  make([]float64, box.Dim()),
		volume: box.CellVolume(),
	}
}

func (d *Dense) IsPortionComplete(cursor []int, axis int) bool {
	return cursor[axis] >= d.box.Counts[axis]
}

func (d *Dense) Advance(axis int, cursor []int) { cursor[axis]++ }

// ContributionFor samples f at the midpoint of the cell under cursor.
func (d *Dense) ContributionFor(cursor []int) float64 {
	for i, c := range cursor {
		d.point[i] = d.box.Midpoint(i, c)
	}

	return d.f(d.point) * d.volume
}

// Slices is the quadrature-of-slices manager: the outer box covers every
// axis but the last, and each outer cell contributes
// cellVolume·∫_lo^hi f(midpoint, x) dx computed by tanh-sinh.
//
// Slices accumulates the quadrature metadata of every slice; read it with
// Evaluation after the traversal. Not safe for concurrent use.
type Slices struct {
	outer   Box
	lo, hi  float64
	f       func(p []float64) float64
	q       quad.Integrator
	point   []float64
	volume  float64
	inner   func(x float64) float64
	summary quad.ErrorEvaluation
	worst   float64
}

// NewSlices integrates f over outer × [lo, hi], the inner interval being
// the last coordinate of f's argument.
func NewSlices(outer Box, lo, hi float64, f func(p []float64) float64, q quad.Integrator) *Slices {
	s := &Slices{
		outer:  outer,
		lo:     lo,
		hi:     hi,
		f:      f,
		q:      q,
		point:  make([]float64, outer.Dim()+1),
		volume: outer.CellVolume(),
	}
	last := outer.Dim()
	s.inner = func(x float64) float64 {
		s.point[last] = x

		return s.f(s.point)
	}

	return s
}

func (s *Slices) IsPortionComplete(cursor []int, axis int) bool {
	return cursor[axis] >= s.outer.Counts[axis]
}

func (s *Slices) Advance(axis int, cursor []int) { cursor[axis]++ }

// ContributionFor integrates the slice through the midpoint of the outer
// cell under cursor.
func (s *Slices) ContributionFor(cursor []int) float64 {
	for i, c := range cursor {
		s.point[i] = s.outer.Midpoint(i, c)
	}
	v, ev := s.q.Integrate(s.inner, s.lo, s.hi)
	s.summary = s.summary.Add(ev.Scale(s.volume))
	if ev.Estimate > s.worst {
		s.worst = ev.Estimate
	}

	return v * s.volume
}

// MaxSliceEstimate returns the largest unweighted estimate of a single slice.
func (s *Slices) MaxSliceEstimate() float64 { return s.worst }

// Evaluation returns the summed, volume-weighted slice metadata.
func (s *Slices) Evaluation() quad.ErrorEvaluation { return s.summary }

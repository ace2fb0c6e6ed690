// SPDX-License-Identifier: MIT

package spline

import (
	"math"

	"github.com/katalvlaran/quadra/integrand"
	"github.com/katalvlaran/quadra/quad"
)

// Segment is the interval (previous Upper, Upper] with its precomputed area.
type Segment struct {
	Upper float64
	Area  float64
}

// SegmentTable is an ordered, immutable list of segments starting at Base.
type SegmentTable struct {
	base     float64
	segments []Segment
	build    quad.ErrorEvaluation
}

// NewSegmentTable validates and copies segs.
//
// Errors: ErrEmptyTable, ErrUnsortedSegments (including NaN bounds).
func NewSegmentTable(base float64, segs []Segment) (*SegmentTable, error) {
	if len(segs) == 0 {
		return nil, splineErrorf("NewSegmentTable", ErrEmptyTable)
	}
	if err := checkIncreasing(base, uppersOf(segs)); err != nil {
		return nil, splineErrorf("NewSegmentTable", err)
	}

	return &SegmentTable{
		base:     base,
		segments: append([]Segment(nil), segs...),
	}, nil
}

// BuildSegmentTable integrates f over [base, uppers[0]], [uppers[0], uppers[1]], …
// to target and returns the resulting table.
func BuildSegmentTable(f integrand.Func, base float64, uppers []float64, target float64) (*SegmentTable, error) {
	if len(uppers) == 0 {
		return nil, splineErrorf("BuildSegmentTable", ErrEmptyTable)
	}
	if err := checkIncreasing(base, uppers); err != nil {
		return nil, splineErrorf("BuildSegmentTable", err)
	}

	segs := make([]Segment, len(uppers))
	var build quad.ErrorEvaluation
	prev := base
	for i, u := range uppers {
		area, ev := quad.Integrate(f, prev, u, target)
		if !ev.Within(target) {
			log.Warningf("segment [%g, %g]: estimate %.3e above target %.3e", prev, u, ev.Estimate, target)
		}
		segs[i] = Segment{Upper: u, Area: area}
		build = build.Add(ev)
		prev = u
	}

	return &SegmentTable{base: base, segments: segs, build: build}, nil
}

// BuildEvaluation returns the summed quadrature metadata of the segment
// areas. A table from NewSegmentTable reports zero.
func (t *SegmentTable) BuildEvaluation() quad.ErrorEvaluation { return t.build }

// Base returns the lowest covered point.
func (t *SegmentTable) Base() float64 { return t.base }

// Len returns the number of segments.
func (t *SegmentTable) Len() int { return len(t.segments) }

// Segment returns segment i.
func (t *SegmentTable) Segment(i int) Segment { return t.segments[i] }

// Total returns the sum of all areas, i.e. the integral from Base to the
// last upper bound.
func (t *SegmentTable) Total() float64 {
	sum := 0.0
	for _, s := range t.segments {
		sum += s.Area
	}

	return sum
}

func uppersOf(segs []Segment) []float64 {
	u := make([]float64, len(segs))
	for i, s := range segs {
		u[i] = s.Upper
	}

	return u
}

func checkIncreasing(base float64, uppers []float64) error {
	if math.IsNaN(base) {
		return ErrUnsortedSegments
	}
	prev := base
	for _, u := range uppers {
		if !(u > prev) {
			return ErrUnsortedSegments
		}
		prev = u
	}

	return nil
}

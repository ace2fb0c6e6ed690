// SPDX-License-Identifier: MIT

package spline

import (
	"github.com/katalvlaran/quadra/grid"
	"github.com/katalvlaran/quadra/integral"
	"github.com/katalvlaran/quadra/integrand"
	"github.com/katalvlaran/quadra/numeric"
)

// Table is the N-D segment table: per-axis bases and strictly increasing
// upper bounds, and one value per cell in row-major order (last axis
// fastest). Cell (i₀, …, i_k) holds the integral over the box whose axis j
// spans (uppers[j][i_j − 1], uppers[j][i_j]], with uppers[j][−1] = bases[j].
type Table[T any] struct {
	bases  []float64
	uppers [][]float64
	shape  []int
	cells  []T
}

// NewTable validates and copies its arguments.
//
// Errors: ErrDimensionMismatch (axis counts or cell count), ErrEmptyTable,
// ErrUnsortedSegments.
func NewTable[T any](bases []float64, uppers [][]float64, cells []T) (*Table[T], error) {
	if len(bases) == 0 || len(bases) != len(uppers) {
		return nil, splineErrorf("NewTable", ErrDimensionMismatch)
	}

	t := &Table[T]{
		bases:  append([]float64(nil), bases...),
		uppers: make([][]float64, len(uppers)),
		shape:  make([]int, len(uppers)),
	}
	size := 1
	for i, u := range uppers {
		if len(u) == 0 {
			return nil, splineErrorf("NewTable", ErrEmptyTable)
		}
		if err := checkIncreasing(bases[i], u); err != nil {
			return nil, splineErrorf("NewTable", err)
		}
		t.uppers[i] = append([]float64(nil), u...)
		t.shape[i] = len(u)
		size *= len(u)
	}
	if len(cells) != size {
		return nil, splineErrorf("NewTable", ErrDimensionMismatch)
	}
	t.cells = append([]T(nil), cells...)

	return t, nil
}

// Dim returns the number of axes.
func (t *Table[T]) Dim() int { return len(t.bases) }

// Shape returns the segment count per axis.
func (t *Table[T]) Shape() []int { return append([]int(nil), t.shape...) }

// Bases returns a copy of the per-axis bases.
func (t *Table[T]) Bases() []float64 { return append([]float64(nil), t.bases...) }

// Uppers returns a copy of the upper bounds of axis.
func (t *Table[T]) Uppers(axis int) []float64 { return append([]float64(nil), t.uppers[axis]...) }

// Cell returns the value at the given per-axis segment indices.
func (t *Table[T]) Cell(idx ...int) T { return t.cells[grid.Offset(t.shape, idx)] }

// BuildTable integrates f over every cell of the grid spanned by bases and
// uppers with an integral.Integrator configured by opts. The cells are
// visited by the odometer engine in row-major order.
func BuildTable(f integrand.Field, bases []float64, uppers [][]float64, opts ...integral.Option) (*Table[float64], error) {
	if f.Dim != len(bases) {
		return nil, splineErrorf("BuildTable", ErrDimensionMismatch)
	}
	shape := make([]int, len(uppers))
	size := 1
	for i, u := range uppers {
		shape[i] = len(u)
		size *= len(u)
	}
	// validate the layout first
	if _, err := NewTable(bases, uppers, make([]float64, size)); err != nil {
		return nil, err
	}

	in, err := integral.New(f, opts...)
	if err != nil {
		return nil, splineErrorf("BuildTable", err)
	}

	cells := make([]float64, size)
	lo := make([]float64, len(bases))
	hi := make([]float64, len(bases))
	var failed error
	cellIntegral := func(c []int) float64 {
		if failed != nil {
			return 0
		}
		for i, j := range c {
			lo[i] = bases[i]
			if j > 0 {
				lo[i] = uppers[i][j-1]
			}
			hi[i] = uppers[i][j]
		}
		v, err := in.ComputeApproximationN(lo, hi)
		if err != nil {
			failed = err

			return 0
		}
		cells[grid.Offset(shape, c)] = v

		return v
	}
	total := grid.Accumulate[float64](grid.Ranges[float64]{Limits: shape, Value: cellIntegral}, numeric.Float64{}, make([]int, len(shape)))
	if failed != nil {
		return nil, splineErrorf("BuildTable", failed)
	}
	log.Debugf("built %v table, total %g", shape, total)

	return &Table[float64]{
		bases:  append([]float64(nil), bases...),
		uppers: copyUppers(uppers),
		shape:  shape,
		cells:  cells,
	}, nil
}

// ConvertTable maps a float64 table into another value type.
func ConvertTable[T any](t *Table[float64], ar numeric.Arithmetic[T]) *Table[T] {
	cells := make([]T, len(t.cells))
	for i, v := range t.cells {
		cells[i] = ar.FromFloat64(v)
	}

	return &Table[T]{
		bases:  append([]float64(nil), t.bases...),
		uppers: copyUppers(t.uppers),
		shape:  append([]int(nil), t.shape...),
		cells:  cells,
	}
}

func copyUppers(u [][]float64) [][]float64 {
	out := make([][]float64, len(u))
	for i, axis := range u {
		out[i] = append([]float64(nil), axis...)
	}

	return out
}

// SPDX-License-Identifier: MIT

package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// countSlack absorbs the rounding in width/delta so that, e.g., 2/1e-3
// yields 2000 cells and not 2001.
const countSlack = 1e-9

// Box is a regular partition of an axis-aligned box: along axis i there are
// Counts[i] cells of width Steps[i] starting at Lo[i].
type Box struct {
	Lo     []float64
	Steps  []float64
	Counts []int
}

// Cells partitions [lo, hi] into cells no wider than delta per axis. The cell
// count per axis is ⌈width/delta⌉ and the effective step is width/count, so
// the cells cover the box exactly. A reversed or zero-width axis gets zero
// cells, which makes the whole box empty.
func Cells(lo, hi, delta []float64) (Box, error) {
	if len(lo) == 0 {
		return Box{}, gridErrorf("Cells", ErrEmptyBox)
	}
	if len(hi) != len(lo) || len(delta) != len(lo) {
		return Box{}, gridErrorf("Cells", ErrDimensionMismatch)
	}
	for _, d := range delta {
		if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
			return Box{}, gridErrorf("Cells", ErrBadDelta)
		}
	}

	k := len(lo)
	widths := make([]float64, k)
	floats.SubTo(widths, hi, lo)

	b := Box{
		Lo:     append([]float64(nil), lo...),
		Steps:  make([]float64, k),
		Counts: make([]int, k),
	}
	for i, w := range widths {
		if !(w > 0) {
			continue
		}
		q := w / delta[i]
		n := int(math.Ceil(q - q*countSlack))
		if n < 1 {
			n = 1
		}
		b.Counts[i] = n
		b.Steps[i] = w / float64(n)
	}

	return b, nil
}

// Dim returns the number of axes.
func (b Box) Dim() int { return len(b.Lo) }

// Start returns the all-zero starting cursor.
func (b Box) Start() []int { return make([]int, len(b.Lo)) }

// Size returns the total number of cells.
func (b Box) Size() int {
	n := 1
	for _, c := range b.Counts {
		n *= c
	}

	return n
}

// Empty reports whether some axis has no cells.
func (b Box) Empty() bool { return b.Size() == 0 }

// CellVolume returns the product of the steps.
func (b Box) CellVolume() float64 { return floats.Prod(b.Steps) }

// Midpoint returns the center coordinate of cell i on axis.
func (b Box) Midpoint(axis, i int) float64 {
	return b.Lo[axis] + (float64(i)+0.5)*b.Steps[axis]
}

// Sub returns the box restricted to the given axes, in that order.
func (b Box) Sub(axes ...int) Box {
	s := Box{
		Lo:     make([]float64, len(axes)),
		Steps:  make([]float64, len(axes)),
		Counts: make([]int, len(axes)),
	}
	for j, a := range axes {
		s.Lo[j], s.Steps[j], s.Counts[j] = b.Lo[a], b.Steps[a], b.Counts[a]
	}

	return s
}

// Coarsen returns the box with half as many cells per axis (at least one),
// covering the same region. Used for Richardson error estimates.
func (b Box) Coarsen() Box {
	c := Box{
		Lo:     append([]float64(nil), b.Lo...),
		Steps:  make([]float64, len(b.Lo)),
		Counts: make([]int, len(b.Lo)),
	}
	for i, n := range b.Counts {
		if n == 0 {
			continue
		}
		m := n / 2
		if m < 1 {
			m = 1
		}
		c.Counts[i] = m
		c.Steps[i] = b.Steps[i] * float64(n) / float64(m)
	}

	return c
}

// Offset returns the row-major position of cursor in an array of the given
// shape (last axis fastest).
func Offset(shape, cursor []int) int {
	off := 0
	for i, c := range cursor {
		off = off*shape[i] + c
	}

	return off
}

// SPDX-License-Identifier: MIT

package grid

import (
	"github.com/katalvlaran/quadra/logger"
	"github.com/katalvlaran/quadra/numeric"
)

var log = logger.MustGetLogger("grid")

// ContributionManager supplies the per-portion logic of an accumulation.
//
// A cursor holds one portion index per axis. The engine owns the cursor; a
// manager may read it and, in Advance, move cursor[axis] forward, but must
// not retain it.
type ContributionManager[T any] interface {
	// IsPortionComplete reports whether cursor[axis] is past the last portion.
	IsPortionComplete(cursor []int, axis int) bool

	// Advance moves cursor[axis] to the next portion.
	Advance(axis int, cursor []int)

	// ContributionFor returns the value of the portion under cursor.
	ContributionFor(cursor []int) T
}

// Options configures an Engine.
type Options struct {
	onVisit func(cursor []int)
}

// Option mutates Options.
type Option func(*Options)

// WithOnVisit installs a hook called with the cursor before each
// contribution. The slice is only valid during the call.
func WithOnVisit(fn func(cursor []int)) Option {
	return func(o *Options) { o.onVisit = fn }
}

// Engine runs odometer traversals over values of type T.
type Engine[T any] struct {
	ar   numeric.Arithmetic[T]
	opts Options
}

// NewEngine returns an Engine summing with ar.
func NewEngine[T any](ar numeric.Arithmetic[T], opts ...Option) *Engine[T] {
	e := &Engine[T]{ar: ar}
	for _, opt := range opts {
		opt(&e.opts)
	}

	return e
}

// Accumulate is shorthand for NewEngine(ar).Accumulate(m, start).
func Accumulate[T any](m ContributionManager[T], ar numeric.Arithmetic[T], start []int) T {
	return NewEngine(ar).Accumulate(m, start)
}

// Accumulate sums m's contributions over every combination of portions from
// start up to (excluding) completion on each axis.
//
// Implementation:
//   - Stage 1: copy start into a fresh cursor; if any axis is already
//     complete the range is empty and the sum is Zero.
//   - Stage 2: spin the last axis, adding contributions until it completes.
//   - Stage 3: carry. Reset the completed axis to its start and advance the
//     next slower one; repeat while that axis is complete too. Completion of
//     axis 0 ends the traversal.
//
// start is not modified.
func (e *Engine[T]) Accumulate(m ContributionManager[T], start []int) T {
	sum := e.ar.Zero()
	k := len(start)
	if k == 0 {
		return sum
	}

	cursor := make([]int, k)
	copy(cursor, start)
	for axis := 0; axis < k; axis++ {
		if m.IsPortionComplete(cursor, axis) {
			return sum
		}
	}

	last := k - 1
	visits := 0
	for {
		for !m.IsPortionComplete(cursor, last) {
			if e.opts.onVisit != nil {
				e.opts.onVisit(cursor)
			}
			sum = e.ar.Add(sum, m.ContributionFor(cursor))
			visits++
			m.Advance(last, cursor)
		}

		axis := last
		for {
			cursor[axis] = start[axis]
			axis--
			if axis < 0 {
				log.Debugf("accumulated %d portions over %d axes", visits, k)

				return sum
			}
			m.Advance(axis, cursor)
			if !m.IsPortionComplete(cursor, axis) {
				break
			}
		}
	}
}

// SPDX-License-Identifier: MIT

package quad

import (
	"math"
	"sync"
)

const (
	// TableLevels is the number of refinement levels in the shared table.
	TableLevels = 12

	// levelZeroStep is h₀, the t-spacing of level 0; level k uses h₀/2^k.
	levelZeroStep = 1.0

	// midWeight is the tanh-sinh weight at t = 0: π/2·cosh 0 / cosh² 0.
	midWeight = math.Pi / 2
)

// Node is one tabulated abscissa/weight pair on the positive half of
// (−1, 1). Its mirror −X carries the same weight.
//
// D is 1 − X computed without cancellation. Samples are placed from D so a
// node close to ±1 never collapses onto the interval bounds.
type Node struct {
	X float64
	D float64
	W float64
}

// LevelTable is the QuadratureLevelTable: tanh-sinh nodes grouped by
// refinement level. Level 0 holds t = h₀, 2h₀, …; level k ≥ 1 holds only the
// odd multiples of h₀/2^k, i.e. exactly the points that level introduces.
//
// A LevelTable is immutable after construction; the accessors hand out
// copies so shared readers can never observe a mutation.
type LevelTable struct {
	levels [][]Node
}

var (
	sharedOnce  sync.Once
	sharedTable *LevelTable
)

// Levels returns the process-wide table, building it on first use.
// Safe for concurrent callers.
func Levels() *LevelTable {
	sharedOnce.Do(func() {
		sharedTable = buildLevelTable(TableLevels)
	})

	return sharedTable
}

// Len returns the number of levels.
func (t *LevelTable) Len() int { return len(t.levels) }

// Step returns the t-spacing h₀/2^k used by level k.
func (t *LevelTable) Step(k int) float64 { return math.Ldexp(levelZeroStep, -k) }

// Nodes returns a copy of the nodes level k introduces.
func (t *LevelTable) Nodes(k int) []Node {
	out := make([]Node, len(t.levels[k]))
	copy(out, t.levels[k])

	return out
}

// Size returns the number of positive-half nodes across all levels.
func (t *LevelTable) Size() int {
	n := 0
	for _, lvl := range t.levels {
		n += len(lvl)
	}

	return n
}

// buildLevelTable tabulates every level up to a common cutoff in t: the
// first point of the finest spacing whose abscissa no longer moves away from
// the previous one in float64. Below the cutoff abscissas are strictly
// increasing and less than 1 on every level.
func buildLevelTable(levels int) *LevelTable {
	cutoff := tableCutoff(levels)
	tbl := &LevelTable{levels: make([][]Node, levels)}
	for k := 0; k < levels; k++ {
		h := math.Ldexp(levelZeroStep, -k)
		first, stride := h, h // level 0: every multiple of h₀
		if k > 0 {
			stride = 2 * h // level k: odd multiples only
		}
		var nodes []Node
		for t := first; t < cutoff; t += stride {
			nodes = append(nodes, tanhSinhNode(t))
		}
		tbl.levels[k] = nodes
	}

	return tbl
}

// tableCutoff scans t at the finest spacing until the abscissa saturates.
func tableCutoff(levels int) float64 {
	h := math.Ldexp(levelZeroStep, -(levels - 1))
	prev := 0.0
	t := h
	for {
		n := tanhSinhNode(t)
		if n.X >= 1 || n.X <= prev || n.W == 0 || n.D == 0 {
			return t
		}
		prev = n.X
		t += h
	}
}

// tanhSinhNode returns x = tanh(u), d = 1 − x = 1/(eᵘ·cosh u) and
// w = π/2·cosh t / cosh² u for u = π/2·sinh t.
func tanhSinhNode(t float64) Node {
	u := math.Pi / 2 * math.Sinh(t)
	c := math.Cosh(u)

	return Node{
		X: math.Tanh(u),
		D: 1 / (math.Exp(u) * c),
		W: math.Pi / 2 * math.Cosh(t) / (c * c),
	}
}

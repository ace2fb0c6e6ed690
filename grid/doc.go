// SPDX-License-Identifier: MIT

// Package grid provides the odometer accumulation engine and the contribution
// managers that feed it.
//
// 🚀 What is odometer accumulation?
//
//	A k-axis index space is walked like a mixed-radix counter: the last axis
//	spins fastest, and when it completes it is reset to its starting portion
//	and the carry advances the next slower axis. The traversal holds one
//	cursor slice per call and never recurses, so the stack depth is the same
//	for two axes and for twenty.
//
// ✨ Key features:
//   - ContributionManager: the injected strategy deciding what a portion is,
//     when an axis is complete, and what each portion contributes.
//   - Generic over the value type through numeric.Arithmetic, so the same
//     traversal sums float64 grid samples and decimal table cells.
//   - Box / Cells: a regular partition of an axis-aligned box whose cells
//     cover it exactly (step = width / count).
//   - Managers: Ranges (index ranges with a value callback), Dense (midpoint
//     sampling), Slices (outer midpoint cells × inner tanh-sinh quadrature).
//
// ⚙️ Usage:
//
//	box, _ := grid.Cells([]float64{0, 0}, []float64{2, 2}, []float64{1e-3, 1e-3})
//	sum := grid.Accumulate[float64](grid.NewDense(box, f), numeric.Float64{}, box.Start())
//
// Complexity: exactly ∏(limit_i − start_i) contributions; O(k) memory.
package grid

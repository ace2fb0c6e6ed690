// SPDX-License-Identifier: MIT

// Package quad approximates one-dimensional definite integrals.
//
// 🚀 What is tanh-sinh quadrature?
//
//	The double-exponential substitution x = tanh(π/2·sinh t) maps the open
//	interval (−1, 1) onto the whole real line. The transformed integrand
//	decays double-exponentially, so the plain trapezoid rule in t converges
//	extremely fast, and no sample is ever placed on an endpoint. Integrands
//	with mild endpoint singularities (1/√x, log x, …) are therefore handled
//	without special treatment.
//
// ✨ Key features:
//   - Process-wide QuadratureLevelTable, built once and shared read-only.
//   - Each refinement level evaluates only the abscissas it introduces.
//   - Error estimate from consecutive levels, with a quadratic-convergence
//     test (log ratio of deltas in [1.9, 2.1] ⇒ estimate = delta²).
//   - LinearDomainMapper (Mapper) normalizes any [lo, hi] onto [−1, 1].
//   - Trapezoid: halving trapezoid refinement driven by a sample step instead
//     of an error bound.
//
// ⚙️ Usage:
//
//	v, ev := quad.Integrate(math.Exp, 0, 1, 1e-12)
//	fmt.Println(v, ev.Estimate, ev.Evaluations)
//
//	q := quad.New(quad.WithTargetError(1e-8), quad.WithMaxLevel(8))
//	v, ev = q.Integrate(f, lo, hi)
//
// Non-convergence is never an error: the best value and its estimate are
// returned and the caller decides whether an estimate above target is fatal.
//
// Complexity: O(2^L) evaluations for L refinement levels; O(1) extra memory.
package quad

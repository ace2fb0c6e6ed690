// SPDX-License-Identifier: MIT

// Package spline evaluates antiderivatives from precomputed segment tables.
//
// A segment is a sub-interval (or sub-box) whose integral is already known.
// Evaluating the antiderivative at a point sums the table up to the point and
// integrates only the uncovered remainder.
//
// 1-D (AntiDerivative):
//   - Segments are walked in increasing order of their upper bound.
//   - An upper bound equal to x returns the running sum with no quadrature.
//   - At the first upper bound above x, if x is closer to that bound than to
//     the last covered one, the whole segment is taken from the table and
//     the quadrature runs backwards from the bound to x.
//   - The remainder is integrated by tanh-sinh and added with its sign.
//
// N-D (NDAntiDerivative):
//   - Per axis, the matched count is the number of upper bounds ≤ the
//     coordinate; the anchor is the last matched bound (or the base).
//   - The cells of the matched sub-grid are summed by the odometer engine.
//   - A Corrector adds the L-shaped residual between the anchors and the
//     point. IntegralCorrector splits it into 2^k − 1 boxes by
//     inclusion–exclusion and integrates each with the dispatcher.
//   - A coordinate below its axis base fails with ErrNotCovered.
//
// Tables are immutable once built and can be shared by concurrent readers.
package spline

// SPDX-License-Identifier: MIT

// Package integral dispatches definite integrals of any dimension to the
// strategy that suits them.
//
// 🚀 What does it decide?
//
//	A Field declares its dimension once. New turns that dimension, plus the
//	caller's options, into an explicit Strategy tag:
//
//	  dim 1            → Adaptive1D   (tanh-sinh to an error target)
//	                   → Trapezoid1D  (WithSampleDeltaMode: refine to a step)
//	  dim 2, optimized → Midpoint2D   (direct double loop, no engine)
//	  dim ≥ 2          → GridMidpoint (odometer over midpoint cells)
//	                   → GridSlices   (WithSliceQuadrature: midpoint cells on
//	                                   the outer axes, tanh-sinh on the last)
//
//	Forcing a strategy the dimension cannot support is rejected by New with
//	ErrStrategyDimension; it never silently falls back.
//
// ✨ Precision and the delta lock:
//   - Per-axis deltas are explicit (SetDeltas, WithDeltas) or 10^-level for
//     every axis (SetRequestedPrecision, WithPrecision).
//   - The first sample taken locks the deltas; later changes fail with
//     ErrDeltasLocked.
//   - Grid strategies report a Richardson estimate obtained from a second
//     pass with half as many cells per axis.
//   - WithStrictError turns a quadrature estimate above target into
//     ErrErrorExceeded instead of a best-effort value.
//
// ⚙️ Usage:
//
//	f := integrand.NewField(2, func(p []float64) float64 { return 16 - p[0]*p[0] - 2*p[1]*p[1] })
//	in, err := integral.New(f, integral.WithPrecision(3))
//	v, err := in.ComputeApproximationN([]float64{0, 0}, []float64{2, 2}) // ≈ 48
package integral

// SPDX-License-Identifier: MIT

// Package numeric describes the numeric types quadra can accumulate in and
// supplies the arithmetic managers that operate on them.
//
// 🚀 Why a manager?
//
//	Quadrature kernels always work in float64, but precomputed tables
//	(segment areas, cell integrals) may be stored in another representation
//	when the caller needs deterministic decimal sums. The accumulation engine
//	and the N-D spline are generic over T and delegate every operation on T
//	to an Arithmetic[T]:
//	  • Zero / FromFloat64 / Float64 - construction and conversion
//	  • Add / Mul / Neg / Inv       - the field operations
//	  • Cmp                         - ordering
//
// ✨ Implementations:
//   - Float64 - native IEEE-754 doubles (Kind = KindFloat64).
//   - Decimal - github.com/shopspring/decimal arbitrary-precision decimals
//     (Kind = KindDecimal).
//
// ⚙️ Usage:
//
//	var ar numeric.Arithmetic[decimal.Decimal] = numeric.Decimal{}
//	sum := ar.Add(ar.FromFloat64(0.1), ar.FromFloat64(0.2)) // exactly 0.3
package numeric

// SPDX-License-Identifier: MIT

package numeric

import "errors"

// ErrDivideByZero is returned by Inv when the operand is zero.
var ErrDivideByZero = errors.New("numeric: division by zero")

// Kind identifies the numeric representation used by a function or a table.
type Kind int

const (
	// KindFloat64 is the native double representation.
	KindFloat64 Kind = iota

	// KindDecimal is an arbitrary-precision decimal representation.
	KindDecimal
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindFloat64:
		return "float64"
	case KindDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// Arithmetic is the generic arithmetic manager consumed by the accumulation
// engine and the N-D spline when they operate over a value type T.
//
// Implementations must be stateless (or immutable) so a single value can be
// shared by concurrent readers.
type Arithmetic[T any] interface {
	// Kind reports which representation T is.
	Kind() Kind

	// Zero returns the additive identity.
	Zero() T

	// FromFloat64 converts a double into T.
	FromFloat64(v float64) T

	// Float64 converts a T into the nearest double.
	Float64(v T) float64

	// Add returns a + b.
	Add(a, b T) T

	// Mul returns a · b.
	Mul(a, b T) T

	// Neg returns −a.
	Neg(a T) T

	// Inv returns 1/a, or ErrDivideByZero when a is zero.
	Inv(a T) (T, error)

	// Cmp returns −1, 0 or +1 as a is less than, equal to, or greater than b.
	Cmp(a, b T) int
}

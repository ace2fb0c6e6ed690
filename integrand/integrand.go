// SPDX-License-Identifier: MIT

// Package integrand is the function abstraction every quadra algorithm
// consumes: a scalar Func, a dimension-declaring Field, and a Counter probe
// that records how many times either was evaluated.
package integrand

import (
	"errors"
	"sync/atomic"

	"github.com/katalvlaran/quadra/numeric"
)

// ErrBadDimension is returned when a Field declares a dimension below one.
var ErrBadDimension = errors.New("integrand: dimension must be >= 1")

// ErrNilFunction is returned when a Field carries no evaluator.
var ErrNilFunction = errors.New("integrand: nil evaluator")

// Func is a real-valued function of one real variable.
type Func func(x float64) float64

// Field is a real-valued function of a point in R^Dim.
//
// Kind describes the numeric type the caller's pipeline works in; the
// evaluator itself always answers in float64.
type Field struct {
	Dim  int
	Kind numeric.Kind
	Eval func(p []float64) float64
}

// Validate reports ErrBadDimension or ErrNilFunction for unusable fields.
func (f Field) Validate() error {
	if f.Dim < 1 {
		return ErrBadDimension
	}
	if f.Eval == nil {
		return ErrNilFunction
	}

	return nil
}

// At evaluates the field at p. p is not retained.
func (f Field) At(p ...float64) float64 { return f.Eval(p) }

// Scalar lifts a one-variable function into a one-dimensional Field.
func Scalar(fn Func) Field {
	return Field{
		Dim:  1,
		Kind: numeric.KindFloat64,
		Eval: func(p []float64) float64 { return fn(p[0]) },
	}
}

// NewField declares a float64 field of the given dimension.
func NewField(dim int, eval func(p []float64) float64) Field {
	return Field{Dim: dim, Kind: numeric.KindFloat64, Eval: eval}
}

// Restrict returns the one-variable function obtained by fixing every
// coordinate of f except axis to the values in base. base is copied, so the
// caller may reuse it.
func Restrict(f Field, base []float64, axis int) Func {
	p := make([]float64, len(base))
	copy(p, base)

	return func(x float64) float64 {
		p[axis] = x

		return f.Eval(p)
	}
}

// Counter counts evaluations of the functions it wraps. It is safe for
// concurrent use.
type Counter struct {
	n atomic.Int64
}

// Func wraps fn so each call increments the counter.
func (c *Counter) Func(fn Func) Func {
	return func(x float64) float64 {
		c.n.Add(1)

		return fn(x)
	}
}

// Field wraps f so each evaluation increments the counter.
func (c *Counter) Field(f Field) Field {
	inner := f.Eval
	f.Eval = func(p []float64) float64 {
		c.n.Add(1)

		return inner(p)
	}

	return f
}

// Count returns the number of evaluations observed so far.
func (c *Counter) Count() int64 { return c.n.Load() }

// Reset zeroes the counter.
func (c *Counter) Reset() { c.n.Store(0) }

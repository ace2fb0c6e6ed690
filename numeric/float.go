// SPDX-License-Identifier: MIT

package numeric

// Float64 is the Arithmetic manager for native doubles.
type Float64 struct{}

var _ Arithmetic[float64] = Float64{}

func (Float64) Kind() Kind                    { return KindFloat64 }
func (Float64) Zero() float64                 { return 0 }
func (Float64) FromFloat64(v float64) float64 { return v }
func (Float64) Float64(v float64) float64     { return v }
func (Float64) Add(a, b float64) float64      { return a + b }
func (Float64) Mul(a, b float64) float64      { return a * b }
func (Float64) Neg(a float64) float64         { return -a }

// Inv returns 1/a. Zero is rejected instead of yielding ±Inf.
func (Float64) Inv(a float64) (float64, error) {
	if a == 0 {
		return 0, ErrDivideByZero
	}

	return 1 / a, nil
}

// Cmp orders a and b; NaN compares equal to everything, as no ordering exists.
func (Float64) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SPDX-License-Identifier: MIT

package numeric

import "github.com/shopspring/decimal"

// Decimal is the Arithmetic manager for github.com/shopspring/decimal values.
//
// Inv divides with decimal.DivisionPrecision fractional digits; every other
// operation is exact.
type Decimal struct{}

var _ Arithmetic[decimal.Decimal] = Decimal{}

func (Decimal) Kind() Kind                               { return KindDecimal }
func (Decimal) Zero() decimal.Decimal                    { return decimal.Zero }
func (Decimal) FromFloat64(v float64) decimal.Decimal    { return decimal.NewFromFloat(v) }
func (Decimal) Float64(v decimal.Decimal) float64        { return v.InexactFloat64() }
func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }
func (Decimal) Neg(a decimal.Decimal) decimal.Decimal    { return a.Neg() }
func (Decimal) Cmp(a, b decimal.Decimal) int             { return a.Cmp(b) }

// Inv returns 1/a or ErrDivideByZero.
func (Decimal) Inv(a decimal.Decimal) (decimal.Decimal, error) {
	if a.IsZero() {
		return decimal.Zero, ErrDivideByZero
	}

	return decimal.NewFromInt(1).Div(a), nil
}

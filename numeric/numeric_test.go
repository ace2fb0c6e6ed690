// SPDX-License-Identifier: MIT

package numeric_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/numeric"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "float64", numeric.KindFloat64.String())
	assert.Equal(t, "decimal", numeric.KindDecimal.String())
	assert.Equal(t, "unknown", numeric.Kind(42).String())
}

func TestFloat64_FieldOperations(t *testing.T) {
	var ar numeric.Arithmetic[float64] = numeric.Float64{}

	assert.Equal(t, numeric.KindFloat64, ar.Kind())
	assert.Equal(t, 0.0, ar.Zero())
	assert.Equal(t, 5.0, ar.Add(2, 3))
	assert.Equal(t, 6.0, ar.Mul(2, 3))
	assert.Equal(t, -2.0, ar.Neg(2))
	assert.Equal(t, -1, ar.Cmp(1, 2))
	assert.Equal(t, 1, ar.Cmp(2, 1))
	assert.Equal(t, 0, ar.Cmp(2, 2))

	inv, err := ar.Inv(4)
	require.NoError(t, err)
	assert.Equal(t, 0.25, inv)

	_, err = ar.Inv(0)
	assert.ErrorIs(t, err, numeric.ErrDivideByZero)
}

func TestDecimal_ExactDecimalSums(t *testing.T) {
	var ar numeric.Arithmetic[decimal.Decimal] = numeric.Decimal{}

	sum := ar.Zero()
	for i := 0; i < 10; i++ {
		sum = ar.Add(sum, ar.FromFloat64(0.1))
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1)), "ten tenths must be exactly one, got %s", sum)
	assert.Equal(t, 1.0, ar.Float64(sum))
	assert.Equal(t, numeric.KindDecimal, ar.Kind())
}

func TestDecimal_InvNegCmp(t *testing.T) {
	ar := numeric.Decimal{}

	inv, err := ar.Inv(ar.FromFloat64(8))
	require.NoError(t, err)
	assert.Equal(t, 0.125, ar.Float64(inv))

	_, err = ar.Inv(ar.Zero())
	assert.ErrorIs(t, err, numeric.ErrDivideByZero)

	assert.Equal(t, -1.5, ar.Float64(ar.Neg(ar.FromFloat64(1.5))))
	assert.Equal(t, 1, ar.Cmp(ar.FromFloat64(2), ar.FromFloat64(1)))
	assert.Equal(t, 6.0, ar.Float64(ar.Mul(ar.FromFloat64(2), ar.FromFloat64(3))))
}

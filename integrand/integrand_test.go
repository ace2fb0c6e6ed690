// SPDX-License-Identifier: MIT

package integrand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/integrand"
	"github.com/katalvlaran/quadra/numeric"
)

func TestField_Validate(t *testing.T) {
	assert.ErrorIs(t, integrand.Field{Dim: 0, Eval: func([]float64) float64 { return 0 }}.Validate(), integrand.ErrBadDimension)
	assert.ErrorIs(t, integrand.Field{Dim: 2}.Validate(), integrand.ErrNilFunction)
	assert.NoError(t, integrand.NewField(3, func([]float64) float64 { return 1 }).Validate())
}

func TestScalar_LiftsFunc(t *testing.T) {
	f := integrand.Scalar(func(x float64) float64 { return 2 * x })

	require.Equal(t, 1, f.Dim)
	assert.Equal(t, numeric.KindFloat64, f.Kind)
	assert.Equal(t, 6.0, f.At(3))
}

func TestRestrict_FixesOtherAxes(t *testing.T) {
	f := integrand.NewField(3, func(p []float64) float64 { return p[0] + 10*p[1] + 100*p[2] })
	base := []float64{1, 2, 3}

	g := integrand.Restrict(f, base, 1)
	base[0] = 99 // the restriction owns its copy

	assert.Equal(t, 1.0+10*5+300, g(5))
	assert.Equal(t, 1.0+10*7+300, g(7))
}

func TestCounter_CountsBothForms(t *testing.T) {
	var c integrand.Counter

	fn := c.Func(func(x float64) float64 { return x })
	field := c.Field(integrand.NewField(2, func(p []float64) float64 { return p[0] * p[1] }))

	fn(1)
	fn(2)
	assert.Equal(t, 6.0, field.At(2, 3))
	assert.EqualValues(t, 3, c.Count())

	c.Reset()
	assert.EqualValues(t, 0, c.Count())
}

// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/quadra/grid"
	"github.com/katalvlaran/quadra/numeric"
	"github.com/katalvlaran/quadra/quad"
)

func TestCells(t *testing.T) {
	b, err := grid.Cells([]float64{0, -1}, []float64{2, 1}, []float64{1e-3, 0.3})
	require.NoError(t, err)

	assert.Equal(t, 2, b.Dim())
	assert.Equal(t, []int{2000, 7}, b.Counts)
	assert.InDelta(t, 1e-3, b.Steps[0], 1e-15)
	assert.InDelta(t, 2.0/7, b.Steps[1], 1e-15)
	assert.Equal(t, 14000, b.Size())
	assert.InDelta(t, 1e-3*2.0/7, b.CellVolume(), 1e-15)
	assert.InDelta(t, 0.0005, b.Midpoint(0, 0), 1e-15)
	assert.InDelta(t, 1-1.0/7, b.Midpoint(1, 6), 1e-15)
}

func TestCells_EmptyAxis(t *testing.T) {
	b, err := grid.Cells([]float64{0, 1}, []float64{1, 1}, []float64{0.1, 0.1})
	require.NoError(t, err)
	assert.True(t, b.Empty())
	assert.Zero(t, grid.Accumulate[float64](grid.NewDense(b, func([]float64) float64 { return 1 }), numeric.Float64{}, b.Start()))
}

func TestCells_Errors(t *testing.T) {
	_, err := grid.Cells(nil, nil, nil)
	assert.ErrorIs(t, err, grid.ErrEmptyBox)

	_, err = grid.Cells([]float64{0}, []float64{1, 2}, []float64{0.1})
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)

	_, err = grid.Cells([]float64{0}, []float64{1}, []float64{0.1, 0.1})
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)

	for _, d := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err = grid.Cells([]float64{0}, []float64{1}, []float64{d})
		assert.ErrorIs(t, err, grid.ErrBadDelta)
	}
}

func TestBox_CoarsenAndSub(t *testing.T) {
	b, err := grid.Cells([]float64{0, 0, 0}, []float64{1, 2, 3}, []float64{0.25, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []int{4, 2, 3}, b.Counts)

	c := b.Coarsen()
	assert.Equal(t, []int{2, 1, 1}, c.Counts)
	assert.InDelta(t, 0.5, c.Steps[0], 1e-15)
	assert.InDelta(t, 2.0, c.Steps[1], 1e-15)
	assert.InDelta(t, 3.0, c.Steps[2], 1e-15)

	s := b.Sub(2, 0)
	assert.Equal(t, []int{3, 4}, s.Counts)
	assert.Equal(t, []float64{1, 0.25}, s.Steps)
}

// ManagerSuite checks the numeric managers on a shared 2-D box.
type ManagerSuite struct {
	suite.Suite
	box grid.Box
}

func (s *ManagerSuite) SetupTest() {
	var err error
	s.box, err = grid.Cells([]float64{0, 0}, []float64{2, 2}, []float64{0.01, 0.01})
	s.Require().NoError(err)
}

// TestDenseBilinear: the midpoint rule is exact for x·y.
func (s *ManagerSuite) TestDenseBilinear() {
	d := grid.NewDense(s.box, func(p []float64) float64 { return p[0] * p[1] })
	got := grid.Accumulate[float64](d, numeric.Float64{}, s.box.Start())
	s.InDelta(4.0, got, 1e-10)
}

// TestDenseQuadratic: 16−x²−2y² over [0,2]² is 48 up to O(h²).
func (s *ManagerSuite) TestDenseQuadratic() {
	d := grid.NewDense(s.box, func(p []float64) float64 { return 16 - p[0]*p[0] - 2*p[1]*p[1] })
	got := grid.Accumulate[float64](d, numeric.Float64{}, s.box.Start())
	// midpoint error is −(h²/24)·∫∫(f_xx+f_yy) = (1e-4/24)·6·4
	s.InDelta(48.0, got, 2e-4)
}

// TestSlicesQuadratic: the inner axis is integrated adaptively.
func (s *ManagerSuite) TestSlicesQuadratic() {
	outer := s.box.Sub(0)
	sl := grid.NewSlices(outer, 0, 2, func(p []float64) float64 {
		return 16 - p[0]*p[0] - 2*p[1]*p[1]
	}, quad.New(quad.WithTargetError(1e-12)))

	got := grid.Accumulate[float64](sl, numeric.Float64{}, outer.Start())
	// only the outer x² term carries midpoint error: (1e-4/24)·2·2·2
	s.InDelta(48.0, got, 1e-4)
	s.Positive(sl.Evaluation().Evaluations)
	s.Less(sl.Evaluation().Estimate, 1e-9)
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

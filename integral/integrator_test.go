// SPDX-License-Identifier: MIT

package integral_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/quadra/integral"
	"github.com/katalvlaran/quadra/integrand"
)

func paraboloid(p []float64) float64 { return 16 - p[0]*p[0] - 2*p[1]*p[1] }

func TestScenarioA_Constant1D(t *testing.T) {
	in, err := integral.New(integrand.Scalar(func(float64) float64 { return 1 }), integral.WithTargetError(1e-6))
	require.NoError(t, err)
	require.Equal(t, integral.Adaptive1D, in.Strategy())

	r, err := in.Approximate([]float64{0}, []float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r.Value, 1e-14)
	assert.Less(t, r.Estimate, 1e-6)
	assert.Positive(t, r.Evaluations)
}

func TestScenarioB_Paraboloid(t *testing.T) {
	lo, hi := []float64{0, 0}, []float64{2, 2}
	cases := []struct {
		name string
		opts []integral.Option
		want integral.Strategy
		tol  float64
	}{
		{"midpoint-2d", nil, integral.Midpoint2D, 1e-5},
		{"grid-midpoint", []integral.Option{integral.WithOptimized2D(false)}, integral.GridMidpoint, 1e-5},
		{"grid-slices", []integral.Option{integral.WithSliceQuadrature()}, integral.GridSlices, 1e-5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := integral.New(integrand.NewField(2, paraboloid), tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.want, in.Strategy())

			r, err := in.Approximate(lo, hi)
			require.NoError(t, err)
			assert.InDelta(t, 48.0, r.Value, tc.tol)
			assert.Less(t, r.Estimate, 1e-5)
		})
	}
}

func TestScenarioB_FineGenericGrid(t *testing.T) {
	if testing.Short() {
		t.Skip("5e8 samples")
	}
	in, err := integral.New(integrand.NewField(2, paraboloid),
		integral.WithStrategy(integral.GridMidpoint), integral.WithPrecision(4))
	require.NoError(t, err)

	v, err := in.ComputeApproximationN([]float64{0, 0}, []float64{2, 2})
	require.NoError(t, err)
	assert.InDelta(t, 48.0, v, 1e-7)
}

func TestCrossStrategyAgreement_Separable(t *testing.T) {
	f := integrand.NewField(2, func(p []float64) float64 { return math.Exp(p[0]) * math.Cos(p[1]) })
	lo, hi := []float64{0, -1}, []float64{1, 2}

	special, err := integral.New(f, integral.WithDeltas(0.01, 0.01))
	require.NoError(t, err)
	generic, err := integral.New(f, integral.WithDeltas(0.01, 0.01), integral.WithOptimized2D(false))
	require.NoError(t, err)
	slices, err := integral.New(f, integral.WithDeltas(0.01, 0.01), integral.WithSliceQuadrature())
	require.NoError(t, err)

	a, err := special.Approximate(lo, hi)
	require.NoError(t, err)
	b, err := generic.Approximate(lo, hi)
	require.NoError(t, err)
	c, err := slices.Approximate(lo, hi)
	require.NoError(t, err)

	assert.InDelta(t, a.Value, b.Value, a.Estimate+b.Estimate+1e-12)
	// slices carry no midpoint error on y, so only the x terms remain
	assert.InDelta(t, a.Value, c.Value, 2*(a.Estimate+c.Estimate)+1e-12)

	exact := (math.E - 1) * (math.Sin(2) + math.Sin(1))
	assert.InDelta(t, exact, a.Value, 1e-4)
	assert.InDelta(t, exact, c.Value, 1e-4)
}

func TestComputeApproximation_Idempotent(t *testing.T) {
	in, err := integral.New(integrand.NewField(2, paraboloid), integral.WithPrecision(2))
	require.NoError(t, err)

	v1, err := in.ComputeApproximationN([]float64{0, 0}, []float64{2, 2})
	require.NoError(t, err)
	v2, err := in.ComputeApproximationN([]float64{0, 0}, []float64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, v1, v2)

	one, err := integral.New(integrand.Scalar(math.Sin))
	require.NoError(t, err)
	s1, err := one.ComputeApproximation(0, math.Pi)
	require.NoError(t, err)
	s2, err := one.ComputeApproximation(0, math.Pi)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.InDelta(t, 2.0, s1, 1e-10)
}

func TestGrid_HigherDimensions(t *testing.T) {
	f := integrand.NewField(3, func(p []float64) float64 { return p[0] + p[1] + p[2] })
	lo, hi := []float64{0, 0, 0}, []float64{1, 1, 1}

	for _, opt := range []integral.Option{integral.WithStrategy(integral.GridMidpoint), integral.WithSliceQuadrature()} {
		in, err := integral.New(f, integral.WithDeltas(0.05, 0.1, 0.2), opt)
		require.NoError(t, err)
		v, err := in.ComputeApproximationN(lo, hi)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, v, 1e-12, "strategy %s", in.Strategy())
	}
}

func TestGridMidpoint_OneDimension(t *testing.T) {
	in, err := integral.New(integrand.Scalar(func(x float64) float64 { return x * x }),
		integral.WithStrategy(integral.GridMidpoint))
	require.NoError(t, err)

	v, err := in.ComputeApproximation(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, v, 1e-6)
}

func TestTrapezoid1D_SampleDeltaMode(t *testing.T) {
	in, err := integral.New(integrand.Scalar(func(x float64) float64 { return x * x }),
		integral.WithSampleDeltaMode())
	require.NoError(t, err)
	require.Equal(t, integral.Trapezoid1D, in.Strategy())

	v, err := in.ComputeApproximation(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, v, 1e-6)
}

func TestApproximate_CountsEvaluations(t *testing.T) {
	var c integrand.Counter
	in, err := integral.New(c.Field(integrand.NewField(2, paraboloid)), integral.WithPrecision(1))
	require.NoError(t, err)

	r, err := in.Approximate([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	// 10×10 fine cells plus 5×5 coarse cells
	assert.Equal(t, 125, r.Evaluations)
	assert.EqualValues(t, 125, c.Count())
}

func TestStrictError(t *testing.T) {
	kink := func(x float64) float64 { return math.Abs(x - 0.3) }

	strict, err := integral.New(integrand.Scalar(kink), integral.WithMaxLevel(1), integral.WithStrictError())
	require.NoError(t, err)
	_, err = strict.ComputeApproximation(0, 1)
	assert.ErrorIs(t, err, integral.ErrErrorExceeded)

	lenient, err := integral.New(integrand.Scalar(kink), integral.WithMaxLevel(1))
	require.NoError(t, err)
	v, err := lenient.ComputeApproximation(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.29, v, 0.05)

	slices, err := integral.New(integrand.NewField(2, func(p []float64) float64 { return kink(p[1]) }),
		integral.WithSliceQuadrature(), integral.WithMaxLevel(1), integral.WithStrictError(), integral.WithDeltas(0.1, 0.1))
	require.NoError(t, err)
	_, err = slices.ComputeApproximationN([]float64{0, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, integral.ErrErrorExceeded)
}

// LockSuite covers the delta configuration lifecycle.
type LockSuite struct {
	suite.Suite
	in *integral.Integrator
}

func (s *LockSuite) SetupTest() {
	var err error
	s.in, err = integral.New(integrand.NewField(2, paraboloid))
	s.Require().NoError(err)
}

// TestDefaults: precision level 3 on every axis, unlocked.
func (s *LockSuite) TestDefaults() {
	s.False(s.in.Locked())
	s.Equal([]float64{1e-3, 1e-3}, s.in.Deltas())
	s.Equal(2, s.in.Dim())
}

// TestLockOnFirstSample: configuration is frozen once sampling starts.
func (s *LockSuite) TestLockOnFirstSample() {
	s.Require().NoError(s.in.SetDeltas([]float64{0.1, 0.05}))
	s.Require().NoError(s.in.SetRequestedPrecision(1))
	s.Equal([]float64{0.1, 0.1}, s.in.Deltas())
	s.InDelta(0.1, s.in.TargetError(), 1e-18)

	_, err := s.in.ComputeApproximationN([]float64{0, 0}, []float64{1, 1})
	s.Require().NoError(err)
	s.True(s.in.Locked())

	s.ErrorIs(s.in.SetDeltas([]float64{0.5, 0.5}), integral.ErrDeltasLocked)
	s.ErrorIs(s.in.SetRequestedPrecision(2), integral.ErrDeltasLocked)
	s.Equal([]float64{0.1, 0.1}, s.in.Deltas())
}

// TestEmptyBoxDoesNotLock: no sample, no lock.
func (s *LockSuite) TestEmptyBoxDoesNotLock() {
	v, err := s.in.ComputeApproximationN([]float64{1, 0}, []float64{1, 2})
	s.Require().NoError(err)
	s.Zero(v)
	s.False(s.in.Locked())
}

// TestMismatchIsEager: length errors are reported before any sample.
func (s *LockSuite) TestMismatchIsEager() {
	_, err := s.in.ComputeApproximationN([]float64{0, 0, 0}, []float64{1, 1})
	s.ErrorIs(err, integral.ErrDimensionMismatch)
	_, err = s.in.ComputeApproximationN([]float64{0, 0}, []float64{1})
	s.ErrorIs(err, integral.ErrDimensionMismatch)
	_, err = s.in.ComputeApproximation(0, 1)
	s.ErrorIs(err, integral.ErrDimensionMismatch)
	s.False(s.in.Locked())

	s.ErrorIs(s.in.SetDeltas([]float64{0.1}), integral.ErrDimensionMismatch)
	s.ErrorIs(s.in.SetDeltas([]float64{0.1, 0}), integral.ErrBadDelta)
	s.ErrorIs(s.in.SetRequestedPrecision(-1), integral.ErrBadPrecision)
	s.ErrorIs(s.in.SetRequestedPrecision(integral.MaxPrecision+1), integral.ErrBadPrecision)
}

// TestSetDeltasDuringFirstCall: a SetDeltas racing the first sample can not
// change the grid that call uses.
func (s *LockSuite) TestSetDeltasDuringFirstCall() {
	started := make(chan struct{})
	release := make(chan struct{})
	var first sync.Once
	in, err := integral.New(integrand.NewField(2, func(p []float64) float64 {
		first.Do(func() {
			close(started)
			<-release
		})

		return 1
	}), integral.WithDeltas(0.5, 0.5))
	s.Require().NoError(err)

	done := make(chan integral.Result)
	go func() {
		r, _ := in.Approximate([]float64{0, 0}, []float64{1, 1})
		done <- r
	}()

	<-started
	s.True(in.Locked())
	s.ErrorIs(in.SetDeltas([]float64{0.1, 0.1}), integral.ErrDeltasLocked)
	close(release)

	r := <-done
	s.InDelta(1.0, r.Value, 1e-12)
	// 2×2 fine cells plus 1×1 coarse cell
	s.Equal(5, r.Evaluations)
	s.Equal([]float64{0.5, 0.5}, in.Deltas())
}

func TestLockSuite(t *testing.T) {
	suite.Run(t, new(LockSuite))
}

func BenchmarkMidpoint2D(b *testing.B) {
	in, err := integral.New(integrand.NewField(2, paraboloid), integral.WithPrecision(2))
	require.NoError(b, err)
	lo, hi := []float64{0, 0}, []float64{2, 2}
	for i := 0; i < b.N; i++ {
		_, _ = in.ComputeApproximationN(lo, hi)
	}
}

func BenchmarkGridMidpoint(b *testing.B) {
	in, err := integral.New(integrand.NewField(2, paraboloid), integral.WithPrecision(2), integral.WithOptimized2D(false))
	require.NoError(b, err)
	lo, hi := []float64{0, 0}, []float64{2, 2}
	for i := 0; i < b.N; i++ {
		_, _ = in.ComputeApproximationN(lo, hi)
	}
}

// SPDX-License-Identifier: MIT

package integral

import (
	"math"
	"sync"

	"github.com/katalvlaran/quadra/grid"
	"github.com/katalvlaran/quadra/integrand"
	"github.com/katalvlaran/quadra/logger"
	"github.com/katalvlaran/quadra/numeric"
	"github.com/katalvlaran/quadra/quad"
)

var log = logger.MustGetLogger("integral")

// Result is the outcome of one Approximate call.
type Result struct {
	Value       float64
	Estimate    float64
	Evaluations int
	Strategy    Strategy
}

// Integrator is the multi-dimensional dispatcher bound to one Field.
//
// Its delta configuration is guarded by a mutex and frozen by the first
// call over a non-empty box; concurrent Approximate calls are safe, though each call samples
// the Field from its own goroutine.
type Integrator struct {
	field    integrand.Field
	strategy Strategy
	opts     Options
	q        quad.Integrator

	mu     sync.Mutex
	deltas []float64
	locked bool
}

// New validates f and opts and fixes the strategy.
//
// Errors: integrand.ErrBadDimension / ErrNilFunction, ErrStrategyDimension,
// ErrDimensionMismatch or ErrBadDelta for WithDeltas values.
func New(f integrand.Field, opts ...Option) (*Integrator, error) {
	if err := f.Validate(); err != nil {
		return nil, integralErrorf("New", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s, err := selectStrategy(f.Dim, o)
	if err != nil {
		return nil, integralErrorf("New", err)
	}

	deltas := o.deltas
	if deltas == nil {
		deltas = uniform(f.Dim, o.precision)
	}
	if err = validateDeltas(f.Dim, deltas); err != nil {
		return nil, integralErrorf("New", err)
	}

	in := &Integrator{
		strategy: s,
		opts:     o,
		q:        quad.New(quad.WithTargetError(o.targetError), quad.WithMaxLevel(o.maxLevel)),
		deltas:   deltas,
	}

	in.field = f
	log.Debugf("new integrator: dim=%d strategy=%s deltas=%v", f.Dim, s, deltas)

	return in, nil
}

// Strategy returns the tag chosen at construction.
func (in *Integrator) Strategy() Strategy { return in.strategy }

// Dim returns the dimension of the bound field.
func (in *Integrator) Dim() int { return in.field.Dim }

// TargetError returns the tanh-sinh error target.
func (in *Integrator) TargetError() float64 { return in.q.TargetError() }

// Locked reports whether sampling has started.
func (in *Integrator) Locked() bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.locked
}

// Deltas returns a copy of the per-axis deltas.
func (in *Integrator) Deltas() []float64 {
	in.mu.Lock()
	defer in.mu.Unlock()

	return append([]float64(nil), in.deltas...)
}

// SetDeltas replaces the per-axis deltas.
//
// Errors: ErrDeltasLocked, ErrDimensionMismatch, ErrBadDelta.
func (in *Integrator) SetDeltas(d []float64) error {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.locked {
		return integralErrorf("SetDeltas", ErrDeltasLocked)
	}
	if err := validateDeltas(in.field.Dim, d); err != nil {
		return integralErrorf("SetDeltas", err)
	}
	in.deltas = append([]float64(nil), d...)

	return nil
}

// SetRequestedPrecision sets every delta and the quadrature target to
// 10^-level.
//
// Errors: ErrDeltasLocked, ErrBadPrecision.
func (in *Integrator) SetRequestedPrecision(level int) error {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.locked {
		return integralErrorf("SetRequestedPrecision", ErrDeltasLocked)
	}
	if level < MinPrecision || level > MaxPrecision {
		return integralErrorf("SetRequestedPrecision", ErrBadPrecision)
	}
	in.deltas = uniform(in.field.Dim, level)
	in.q = quad.New(quad.WithTargetError(math.Pow(10, -float64(level))), quad.WithMaxLevel(in.opts.maxLevel))

	return nil
}

// ComputeApproximation integrates a one-dimensional field over [lo, hi].
func (in *Integrator) ComputeApproximation(lo, hi float64) (float64, error) {
	r, err := in.Approximate([]float64{lo}, []float64{hi})

	return r.Value, err
}

// ComputeApproximationN integrates over the box [lo, hi].
func (in *Integrator) ComputeApproximationN(lo, hi []float64) (float64, error) {
	r, err := in.Approximate(lo, hi)

	return r.Value, err
}

// Approximate integrates over the box [lo, hi] with the configured strategy
// and reports the value with its error estimate.
//
// Errors: ErrDimensionMismatch (before any sample), ErrErrorExceeded in
// strict mode.
func (in *Integrator) Approximate(lo, hi []float64) (Result, error) {
	dim := in.field.Dim
	if len(lo) != dim || len(hi) != dim {
		return Result{}, integralErrorf("Approximate", ErrDimensionMismatch)
	}

	// The snapshot that will be sampled and the lock are taken together, so
	// no SetDeltas can slip in between. An empty box samples nothing.
	in.mu.Lock()
	deltas := append([]float64(nil), in.deltas...)
	q := in.q
	if nonEmpty(lo, hi) {
		in.locked = true
	}
	in.mu.Unlock()

	var counter integrand.Counter
	f := counter.Field(in.field)

	var (
		res Result
		err error
	)
	switch in.strategy {
	case Adaptive1D:
		res, err = in.adaptive(f, lo[0], hi[0], q)
	case Trapezoid1D:
		res, err = trapezoid(f, lo[0], hi[0], deltas[0])
	case Midpoint2D:
		res, err = midpointPair(f, lo, hi, deltas)
	case GridMidpoint:
		res, err = gridMidpoint(f, lo, hi, deltas)
	case GridSlices:
		res, err = in.gridSlices(f, lo, hi, deltas, q)
	default:
		err = ErrStrategyDimension
	}
	if err != nil {
		return Result{}, integralErrorf("Approximate", err)
	}
	res.Strategy = in.strategy
	res.Evaluations = int(counter.Count())
	log.Debugf("%s over %v..%v: value=%.17g estimate=%.3e evaluations=%d",
		in.strategy, lo, hi, res.Value, res.Estimate, res.Evaluations)

	return res, nil
}

// nonEmpty reports whether every axis of [lo, hi] has positive width.
func nonEmpty(lo, hi []float64) bool {
	for i := range lo {
		if !(lo[i] < hi[i]) {
			return false
		}
	}

	return true
}

func (in *Integrator) adaptive(f integrand.Field, lo, hi float64, q quad.Integrator) (Result, error) {
	v, ev := q.Integrate(integrand.Restrict(f, []float64{0}, 0), lo, hi)
	if in.opts.strict && !ev.Within(q.TargetError()) {
		return Result{}, ErrErrorExceeded
	}

	return Result{Value: v, Estimate: ev.Estimate}, nil
}

func trapezoid(f integrand.Field, lo, hi, step float64) (Result, error) {
	v, ev, err := quad.Trapezoid(integrand.Restrict(f, []float64{0}, 0), lo, hi, step)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: v, Estimate: ev.Estimate}, nil
}

// midpointPair runs the specialized 2-D rule on the fine and the coarse grid.
func midpointPair(f integrand.Field, lo, hi, deltas []float64) (Result, error) {
	fine, err := grid.Cells(lo, hi, deltas)
	if err != nil {
		return Result{}, err
	}
	v := midpoint2D(f.Eval, fine)
	c := midpoint2D(f.Eval, fine.Coarsen())

	return Result{Value: v, Estimate: richardson(v, c)}, nil
}

func gridMidpoint(f integrand.Field, lo, hi, deltas []float64) (Result, error) {
	fine, err := grid.Cells(lo, hi, deltas)
	if err != nil {
		return Result{}, err
	}
	coarse := fine.Coarsen()
	v := grid.Accumulate[float64](grid.NewDense(fine, f.Eval), numeric.Float64{}, fine.Start())
	c := grid.Accumulate[float64](grid.NewDense(coarse, f.Eval), numeric.Float64{}, coarse.Start())

	return Result{Value: v, Estimate: richardson(v, c)}, nil
}

func (in *Integrator) gridSlices(f integrand.Field, lo, hi, deltas []float64, q quad.Integrator) (Result, error) {
	k := len(lo) - 1
	fine, err := grid.Cells(lo[:k], hi[:k], deltas[:k])
	if err != nil {
		return Result{}, err
	}
	if !(lo[k] < hi[k]) {
		return Result{}, nil
	}
	coarse := fine.Coarsen()

	fs := grid.NewSlices(fine, lo[k], hi[k], f.Eval, q)
	v := grid.Accumulate[float64](fs, numeric.Float64{}, fine.Start())
	if in.opts.strict && fs.MaxSliceEstimate() > q.TargetError() {
		return Result{}, ErrErrorExceeded
	}
	cs := grid.NewSlices(coarse, lo[k], hi[k], f.Eval, q)
	c := grid.Accumulate[float64](cs, numeric.Float64{}, coarse.Start())

	return Result{Value: v, Estimate: richardson(v, c) + fs.Evaluation().Estimate}, nil
}

// richardson estimates the error of a second-order rule from its value on a
// grid and on the grid with half as many cells per axis.
func richardson(fine, coarse float64) float64 {
	return math.Abs(fine-coarse) / 3
}

func uniform(dim, level int) []float64 {
	d := make([]float64, dim)
	step := math.Pow(10, -float64(level))
	for i := range d {
		d[i] = step
	}

	return d
}

func validateDeltas(dim int, d []float64) error {
	if len(d) != dim {
		return ErrDimensionMismatch
	}
	for _, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return ErrBadDelta
		}
	}

	return nil
}

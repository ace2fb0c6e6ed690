// Package quadra is a toolkit for definite integrals: adaptive one-dimensional
// quadrature, grid integration in any number of dimensions, and antiderivatives
// served from precomputed segment tables.
//
// 🚀 What is quadra?
//
//	A small set of packages that build on each other:
//		• quad      - tanh-sinh quadrature, the linear domain mapper, trapezoid refinement
//		• grid      - odometer accumulation engine and its contribution managers
//		• integral  - dimension-driven dispatcher with a delta lock
//		• spline    - 1-D and N-D segment-table antiderivatives
//		• numeric   - arithmetic managers (float64, shopspring decimal)
//		• integrand - function abstraction and evaluation counter
//
// ✨ Why choose quadra?
//
//   - Endpoint-safe – tanh-sinh never samples the interval ends
//   - Honest errors – every value comes with an estimate and an evaluation count
//   - Explicit strategies – tagged at construction, never inferred at run time
//   - Flat traversal – the grid engine never recurses, whatever the dimension
//
// Supporting packages:
//
//	config/     - YAML configuration for the CLI
//	logger/     - go-logging module loggers, quiet by default
//	cmd/quadra/ - `quadra integrate` and `quadra antiderivative`
//	examples/   - runnable scenarios (go run ./examples)
//
// Quick example:
//
//	v, ev := quad.Integrate(math.Exp, 0, 1, 1e-12)
//
//	in, _ := integral.New(integrand.NewField(2, f), integral.WithPrecision(3))
//	v, _ = in.ComputeApproximationN([]float64{0, 0}, []float64{2, 2})
//
//	go get github.com/katalvlaran/quadra
package quadra

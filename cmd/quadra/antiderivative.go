// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/quad"
	"github.com/katalvlaran/quadra/spline"
)

func newAntiDerivativeCommand() *cobra.Command {
	var (
		src    string
		base   float64
		bounds []float64
		at     []float64
		target float64
	)
	cmd := &cobra.Command{
		Use:     "antiderivative",
		Short:   "tabulate ∫ f from a base and evaluate it at points",
		Example: `quadra antiderivative --expr "exp(x)" --base -10 --bounds -1,0.1,1 --at 0,0.5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}
			if !(target > 0) {
				return fmt.Errorf("--target must be positive, got %g", target)
			}
			e, err := compile(src, []string{"x"})
			if err != nil {
				return err
			}
			f := e.scalar()

			table, err := spline.BuildSegmentTable(f, base, bounds, target)
			if err != nil {
				return err
			}
			ad := spline.NewAntiDerivative(f, table, quad.WithTargetError(target))

			out := cmd.OutOrStdout()
			for _, x := range at {
				v, ev := ad.EvalWithError(x)
				fmt.Fprintf(out, "F(%g) = %.15g (estimate %.1e, %d evaluations)\n", x, v, ev.Estimate, ev.Evaluations)
			}

			return e.Err()
		},
	}

	f := cmd.Flags()
	f.StringVar(&src, "expr", "", "integrand in x")
	f.Float64Var(&base, "base", 0, "lowest covered point")
	f.Float64SliceVar(&bounds, "bounds", nil, "segment upper bounds, increasing")
	f.Float64SliceVar(&at, "at", nil, "evaluation points")
	f.Float64Var(&target, "target", 1e-12, "tanh-sinh absolute error target")
	_ = cmd.MarkFlagRequired("expr")
	_ = cmd.MarkFlagRequired("bounds")

	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/integral"
)

func newIntegrateCommand() *cobra.Command {
	var (
		src       string
		vars      []string
		lo, hi    []float64
		deltas    []float64
		precision int
		strategy  string
		target    float64
		strict    bool
	)
	cmd := &cobra.Command{
		Use:     "integrate",
		Short:   "integrate an expression over a box",
		Example: `quadra integrate --expr "16 - x**2 - 2*y**2" --vars x,y --lo 0,0 --hi 2,2 --precision 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("strategy") {
				cfg.Integral.Strategy = strategy
			}
			if flags.Changed("precision") {
				cfg.Integral.Precision = precision
			}
			if flags.Changed("deltas") {
				cfg.Integral.Deltas = deltas
			}
			if flags.Changed("target") {
				cfg.Integral.TargetError = target
			}
			if flags.Changed("strict") {
				cfg.Integral.Strict = strict
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}

			e, err := compile(src, vars)
			if err != nil {
				return err
			}
			in, err := integral.New(e.field(), opts...)
			if err != nil {
				return err
			}
			r, err := in.Approximate(lo, hi)
			if err != nil {
				return err
			}
			if err = e.Err(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value: %.15g\n", r.Value)
			fmt.Fprintf(out, "estimate: %.3e\n", r.Estimate)
			fmt.Fprintf(out, "evaluations: %d\n", r.Evaluations)
			fmt.Fprintf(out, "strategy: %s\n", r.Strategy)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&src, "expr", "", "integrand, e.g. \"exp(-x**2)\"")
	f.StringSliceVar(&vars, "vars", []string{"x"}, "variable names, one per axis")
	f.Float64SliceVar(&lo, "lo", nil, "lower bounds, one per axis")
	f.Float64SliceVar(&hi, "hi", nil, "upper bounds, one per axis")
	f.Float64SliceVar(&deltas, "deltas", nil, "grid deltas, one per axis")
	f.IntVar(&precision, "precision", 0, "deltas and target error of 10^-precision")
	f.StringVar(&strategy, "strategy", integral.Auto.String(), "auto, adaptive-1d, trapezoid-1d, midpoint-2d, grid-midpoint or grid-slices")
	f.Float64Var(&target, "target", 0, "tanh-sinh absolute error target")
	f.BoolVar(&strict, "strict", false, "fail when the error target is not reached")
	_ = cmd.MarkFlagRequired("expr")
	_ = cmd.MarkFlagRequired("lo")
	_ = cmd.MarkFlagRequired("hi")

	return cmd
}

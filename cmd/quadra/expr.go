// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/Knetic/govaluate"

	"github.com/katalvlaran/quadra/integrand"
)

var (
	errUnknownVariable = errors.New("expression uses an undeclared variable")
	errArity           = errors.New("wrong number of arguments")
	errNotNumber       = errors.New("value is not a number")
)

// functions are the math helpers available inside expressions.
var functions = map[string]govaluate.ExpressionFunction{
	"exp":  unary(math.Exp),
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"sqrt": unary(math.Sqrt),
	"log":  unary(math.Log),
	"abs":  unary(math.Abs),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow: %w: %d", errArity, len(args))
		}
		x, ok1 := args[0].(float64)
		y, ok2 := args[1].(float64)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("pow: %w", errNotNumber)
		}

		return math.Pow(x, y), nil
	},
}

func unary(fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %d", errArity, len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, errNotNumber
		}

		return fn(x), nil
	}
}

// expression is a compiled integrand over named variables. An evaluation
// error turns the sample into NaN and is kept for Err.
type expression struct {
	src   string
	expr  *govaluate.EvaluableExpression
	index map[string]int

	mu  sync.Mutex
	err error
}

// compile parses src and checks it only references vars.
func compile(src string, vars []string) (*expression, error) {
	e, err := govaluate.NewEvaluableExpressionWithFunctions(src, functions)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", src, err)
	}

	index := make(map[string]int, len(vars))
	for i, v := range vars {
		index[v] = i
	}
	for _, tok := range e.Tokens() {
		if tok.Kind != govaluate.VARIABLE {
			continue
		}
		name, _ := tok.Value.(string)
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", errUnknownVariable, name)
		}
	}

	return &expression{src: src, expr: e, index: index}, nil
}

// point exposes a sample as govaluate parameters.
type point struct {
	index map[string]int
	p     []float64
}

func (pt point) Get(name string) (interface{}, error) {
	i, ok := pt.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownVariable, name)
	}

	return pt.p[i], nil
}

// eval evaluates at p.
func (e *expression) eval(p []float64) float64 {
	v, err := e.expr.Eval(point{index: e.index, p: p})
	if err == nil {
		if f, ok := v.(float64); ok {
			return f
		}
		err = fmt.Errorf("%q: %w: %v", e.src, errNotNumber, v)
	}
	e.mu.Lock()
	if e.err == nil {
		e.err = err
	}
	e.mu.Unlock()

	return math.NaN()
}

// Err returns the first evaluation error.
func (e *expression) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.err
}

// field returns the expression as a Field over len(index) axes.
func (e *expression) field() integrand.Field {
	return integrand.NewField(len(e.index), e.eval)
}

// scalar returns the expression as a one-variable function.
func (e *expression) scalar() integrand.Func {
	p := make([]float64, 1)

	return func(x float64) float64 {
		p[0] = x

		return e.eval(p)
	}
}

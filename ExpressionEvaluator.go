package main

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ExprEvaluator adapts expr-lang to the evaluator contract. It only ever
// sees purely-literal arithmetic: compilation runs against an empty
// environment with builtins disabled, so any token left over after cell
// substitution fails the syntax check.
type ExprEvaluator struct {
	compilerOptions []expr.Option
}

func NewExprEvaluator() *ExprEvaluator {
	return &ExprEvaluator{
		compilerOptions: []expr.Option{
			expr.Env(map[string]any{}),
			expr.Optimize(false),
			expr.DisableAllBuiltins(),
		},
	}
}

func (e *ExprEvaluator) CheckSyntax(expression string) error {
	_, err := e.compile(expression)
	return err
}

func (e *ExprEvaluator) Calculate(expression string) (float64, error) {
	program, err := e.compile(expression)
	if err != nil {
		return 0, err
	}

	machine := new(vm.VM)
	output, err := machine.Run(program, map[string]any{})
	if err != nil {
		return 0, err
	}

	result, err := toFloat(output)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("error in calculations, resulted in NaN")
	}

	return result, nil
}

func (e *ExprEvaluator) compile(expression string) (*vm.Program, error) {
	return expr.Compile(expression, e.compilerOptions...)
}

func toFloat(output any) (float64, error) {
	switch v := output.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("non-numeric result %v", output)
	}
}

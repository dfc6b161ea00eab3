package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprEvaluator_CheckSyntax(t *testing.T) {
	evaluator := NewExprEvaluator()

	t.Run("valid_expressions", func(t *testing.T) {
		for _, expression := range []string{"1+2", "10 - 3 * 2", "10.5 + 20.5", "54/27", "10 - -5", "(1+2)*3"} {
			assert.NoError(t, evaluator.CheckSyntax(expression), "expression %q", expression)
		}
	})

	t.Run("invalid_expressions", func(t *testing.T) {
		for _, expression := range []string{"10+", "*", "Hello + 1", "A5+1", ""} {
			assert.Error(t, evaluator.CheckSyntax(expression), "expression %q", expression)
		}
	})
}

func TestExprEvaluator_Calculate(t *testing.T) {
	evaluator := NewExprEvaluator()

	t.Run("integer_operands_yield_float", func(t *testing.T) {
		result, err := evaluator.Calculate("10+20")
		assert.NoError(t, err)
		assert.Equal(t, 30.0, result)
	})

	t.Run("mixed_operands", func(t *testing.T) {
		result, err := evaluator.Calculate("110 + 20.5")
		assert.NoError(t, err)
		assert.Equal(t, 130.5, result)
	})

	t.Run("division", func(t *testing.T) {
		result, err := evaluator.Calculate("54/27")
		assert.NoError(t, err)
		assert.Equal(t, 2.0, result)
	})

	t.Run("negative_substitution", func(t *testing.T) {
		result, err := evaluator.Calculate("-10 - 50 + 2*3")
		assert.NoError(t, err)
		assert.Equal(t, -54.0, result)
	})

	t.Run("division_by_zero", func(t *testing.T) {
		_, err := evaluator.Calculate("10/0")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "NaN")
	})

	t.Run("zero_by_zero", func(t *testing.T) {
		_, err := evaluator.Calculate("0/0")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "NaN")
	})

	t.Run("non_numeric_result", func(t *testing.T) {
		_, err := evaluator.Calculate("1 == 1")
		assert.Error(t, err)
	})

	t.Run("compile_failure", func(t *testing.T) {
		_, err := evaluator.Calculate("10+")
		assert.Error(t, err)
	})
}

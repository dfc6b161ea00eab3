package contracts

// ExpressionEvaluator computes arithmetic over purely-literal text. Cell
// references are substituted away before an expression reaches it.
type ExpressionEvaluator interface {
	CheckSyntax(expression string) error
	Calculate(expression string) (float64, error)
}

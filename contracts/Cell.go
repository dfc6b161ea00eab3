package contracts

import (
	"errors"
	"strconv"
	"strings"
)

// FormulaPrefix marks a text value as a formula.
const FormulaPrefix = "="

type ValueKind uint8

const (
	KindInt ValueKind = iota
	KindFloat
	KindText
	KindFormula
)

// Value is the tagged union a cell holds: an integer, a float, plain text,
// or raw formula text. Literals keep their original kind until they pass
// through formula evaluation.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Text  string
}

func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// TextValue classifies s as a formula when it carries the "=" prefix.
func TextValue(s string) Value {
	if strings.HasPrefix(s, FormulaPrefix) {
		return Value{Kind: KindFormula, Text: s}
	}
	return Value{Kind: KindText, Text: s}
}

func (v Value) IsFormula() bool {
	return v.Kind == KindFormula
}

// FormulaBody returns the formula text without the "=" prefix.
func (v Value) FormulaBody() string {
	return strings.TrimPrefix(v.Text, FormulaPrefix)
}

// Literal renders the value as the text that substitutes for a cell
// reference inside an expression.
func (v Value) Literal() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	default:
		return v.Text
	}
}

// Native unwraps the value for callers that want the plain Go type.
func (v Value) Native() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	default:
		return v.Text
	}
}

// Cell is the envelope the API and webhooks carry: the raw value as
// written and the evaluated result.
type Cell struct {
	Id     string `json:"cell_id,omitempty"`
	Value  string `json:"value"`
	Result string `json:"result"`
}

type CellList map[string]*Cell

var InvalidCellIdError = errors.New("invalid cell id")

var CircularReferenceError = errors.New("circular reference detected")

var CellNotFoundError = errors.New("cell does not exist")

var InvalidFormulaError = errors.New("invalid formula")

// MissingFormulaError signals broken bookkeeping: a cell is flagged as
// formula-holding but its formula text is gone. Not expected to recover.
var MissingFormulaError = errors.New("formula does not exist")

var SheetNotFoundError = errors.New("sheet not found")

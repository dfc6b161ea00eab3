package main

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dattgoswami/spreadsheet-backend-library/contracts"
)

// DefaultMaxEvalDepth bounds formula recursion so that a multi-hop cycle
// the graph check cannot see degrades into a deterministic error instead
// of unbounded recursion.
const DefaultMaxEvalDepth = 64

var cellIdPattern = regexp.MustCompile(`^[A-Z]+[1-9][0-9]*$`)

// Spreadsheet is the in-memory reactive cell store: cell values, formula
// bookkeeping, the dependency graph and the undo/redo history, evaluated
// lazily on read. Not safe for concurrent use; SheetRepository serializes
// access per instance.
type Spreadsheet struct {
	cells    map[string]contracts.Value
	formulas map[string]string
	graph    *DependencyGraph
	history  *History
	executor contracts.ExpressionEvaluator
	logger   *slog.Logger
	maxDepth int
}

func NewSpreadsheet(executor contracts.ExpressionEvaluator, logger *slog.Logger, maxEvalDepth int) *Spreadsheet {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if maxEvalDepth <= 0 {
		maxEvalDepth = DefaultMaxEvalDepth
	}

	return &Spreadsheet{
		cells:    map[string]contracts.Value{},
		formulas: map[string]string{},
		graph:    NewDependencyGraph(),
		history:  NewHistory(),
		executor: executor,
		logger:   logger,
		maxDepth: maxEvalDepth,
	}
}

func (s *Spreadsheet) SetCellValue(cellId string, value contracts.Value) error {
	if err := validateCellId(cellId); err != nil {
		s.logger.Error("rejected cell write", "cell_id", cellId, "error", err)
		return err
	}

	if value.IsFormula() {
		if err := s.updateDependencies(cellId, value.FormulaBody()); err != nil {
			return err
		}
	} else if _, hadFormula := s.formulas[cellId]; hadFormula {
		// Switching from formula to literal drops this cell's own
		// dependency entry only. Cells that referenced the old formula
		// are not touched; they re-resolve on their next read.
		delete(s.formulas, cellId)
		s.graph.Clear(cellId)
	}

	var prior *contracts.Value
	if current, ok := s.cells[cellId]; ok {
		prior = &current
	}
	s.history.RecordWrite(cellId, prior)

	s.cells[cellId] = value
	if value.IsFormula() {
		s.formulas[cellId] = value.Text
	}

	s.logger.Debug("cell committed", "cell_id", cellId, "value", value.Literal())
	return nil
}

func (s *Spreadsheet) GetCellValue(cellId string) (contracts.Value, error) {
	return s.getCellValue(cellId, 0)
}

// Undo reverts the most recent write, restoring the cell's previous value
// and its dependency bookkeeping. Restoring a stale formula re-runs the
// assignment-time dependency update, which can itself detect a cycle; the
// error propagates and the history record stays put.
func (s *Spreadsheet) Undo() error {
	revision, ok := s.history.PeekPast()
	if !ok {
		return nil
	}

	var current *contracts.Value
	if value, exists := s.cells[revision.CellId]; exists {
		current = &value
	}
	s.history.PushFuture(Revision{CellId: revision.CellId, Value: current})

	delete(s.cells, revision.CellId)
	delete(s.formulas, revision.CellId)
	s.graph.Clear(revision.CellId)

	if revision.Value != nil {
		s.cells[revision.CellId] = *revision.Value
		if revision.Value.IsFormula() {
			if err := s.updateDependencies(revision.CellId, revision.Value.FormulaBody()); err != nil {
				s.logger.Error("undo failed to reinstate formula", "cell_id", revision.CellId, "error", err)
				return err
			}
			s.formulas[revision.CellId] = revision.Value.Text
		}
	}

	_, _ = s.history.PopPast()
	return nil
}

// Redo re-applies the most recently undone write. The value was accepted
// once, so dependencies are re-registered without a cycle re-check.
func (s *Spreadsheet) Redo() {
	revision, ok := s.history.PopFuture()
	if !ok {
		s.logger.Warn("nothing to redo")
		return
	}
	s.history.PushPast(revision)

	if revision.Value == nil {
		delete(s.cells, revision.CellId)
		delete(s.formulas, revision.CellId)
		s.graph.Clear(revision.CellId)
		return
	}

	s.cells[revision.CellId] = *revision.Value
	if revision.Value.IsFormula() {
		s.formulas[revision.CellId] = revision.Value.Text
		s.graph.SetDependsOn(revision.CellId, ExtractDependencies(revision.Value.FormulaBody()))
	}
}

func validateCellId(cellId string) error {
	if cellId == "" {
		return fmt.Errorf("%w: empty cell id", contracts.InvalidCellIdError)
	}
	if !cellIdPattern.MatchString(cellId) {
		return fmt.Errorf("%w: %s", contracts.InvalidCellIdError, cellId)
	}
	return nil
}

// updateDependencies replaces the cell's dependency set and checks for a
// direct cycle, rolling the set back so a rejected write leaves the graph
// exactly as it was.
func (s *Spreadsheet) updateDependencies(cellId string, formulaBody string) error {
	snapshot, existed := s.graph.Snapshot(cellId)
	s.graph.SetDependsOn(cellId, ExtractDependencies(formulaBody))

	if s.graph.HasDirectCycle(cellId) {
		s.graph.Restore(cellId, snapshot, existed)
		s.logger.Error("circular reference", "cell_id", cellId)
		return fmt.Errorf("cell %s: %w", cellId, contracts.CircularReferenceError)
	}

	return nil
}

func (s *Spreadsheet) getCellValue(cellId string, depth int) (contracts.Value, error) {
	value, ok := s.cells[cellId]
	if !ok {
		s.logger.Error("cell read miss", "cell_id", cellId)
		return contracts.Value{}, fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
	}

	if !value.IsFormula() {
		return value, nil
	}

	formula, ok := s.formulas[cellId]
	if !ok {
		s.logger.Error("formula bookkeeping lost", "cell_id", cellId)
		return contracts.Value{}, fmt.Errorf("cell %s: %w", cellId, contracts.MissingFormulaError)
	}

	result, err := s.evaluate(strings.TrimPrefix(formula, contracts.FormulaPrefix), cellId, depth)
	if err != nil {
		s.logger.Error("formula evaluation failed", "cell_id", cellId, "error", err)
		return contracts.Value{}, fmt.Errorf("cell %s: %w", cellId, err)
	}

	return contracts.FloatValue(result), nil
}

// evaluate substitutes referenced cell values into the formula body, then
// delegates the purely-literal expression to the evaluator. Evaluation is
// re-done from scratch on every read; nothing is cached.
func (s *Spreadsheet) evaluate(formulaBody string, originCellId string, depth int) (float64, error) {
	if depth >= s.maxDepth {
		return 0, fmt.Errorf("%w: evaluation depth limit %d exceeded", contracts.CircularReferenceError, s.maxDepth)
	}

	for cellId := range s.cells {
		token := regexp.MustCompile(`\b` + regexp.QuoteMeta(cellId) + `\b`)
		if !token.MatchString(formulaBody) {
			continue
		}

		// The evaluation-time half of cycle protection: a referenced
		// cell whose dependency set already names the origin would
		// substitute forever.
		if s.graph.DependsOn(cellId, originCellId) {
			return 0, fmt.Errorf("%s references %s: %w", cellId, originCellId, contracts.CircularReferenceError)
		}

		value, err := s.getCellValue(cellId, depth+1)
		if err != nil {
			return 0, err
		}
		formulaBody = token.ReplaceAllString(formulaBody, value.Literal())
	}

	if err := s.executor.CheckSyntax(formulaBody); err != nil {
		return 0, fmt.Errorf("%w: invalid syntax in formula: %v", contracts.InvalidFormulaError, err)
	}

	result, err := s.executor.Calculate(formulaBody)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", contracts.InvalidFormulaError, err)
	}

	s.logger.Debug("formula evaluated", "cell_id", originCellId, "expression", formulaBody, "result", result)
	return result, nil
}

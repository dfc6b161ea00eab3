package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/dattgoswami/spreadsheet-backend-library/contracts"
)

// SheetRepository owns one Spreadsheet per sheet id and provides the
// mutual-exclusion boundary the engine itself deliberately lacks: every
// operation on a sheet runs under that sheet's mutex.
type SheetRepository struct {
	mu       sync.Mutex
	sheets   map[string]*sheetEntry
	executor contracts.ExpressionEvaluator
	logger   *slog.Logger
	maxDepth int
}

type sheetEntry struct {
	mu     sync.Mutex
	engine *Spreadsheet
}

func NewSheetRepository(executor contracts.ExpressionEvaluator, logger *slog.Logger, maxEvalDepth int) *SheetRepository {
	return &SheetRepository{
		sheets:   map[string]*sheetEntry{},
		executor: executor,
		logger:   logger,
		maxDepth: maxEvalDepth,
	}
}

func (r *SheetRepository) SetCell(sheetId string, cellId string, value string) (*contracts.Cell, error) {
	entry := r.obtainSheet(sheetId)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.engine.SetCellValue(cellId, ClassifyValue(value)); err != nil {
		WriteRejections.Inc()
		return nil, err
	}
	CellWrites.Inc()

	return r.renderCell(entry.engine, cellId, value), nil
}

func (r *SheetRepository) GetCell(sheetId string, cellId string) (*contracts.Cell, error) {
	entry, err := r.lookupSheet(sheetId)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	raw, ok := entry.engine.cells[cellId]
	if !ok {
		return nil, fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
	}

	value, err := entry.engine.GetCellValue(cellId)
	if err != nil {
		EvaluationErrors.Inc()
		return nil, err
	}
	CellReads.Inc()

	return &contracts.Cell{Id: cellId, Value: raw.Literal(), Result: value.Literal()}, nil
}

func (r *SheetRepository) GetCellList(sheetId string) (contracts.CellList, error) {
	entry, err := r.lookupSheet(sheetId)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	cellList := contracts.CellList{}
	for cellId := range entry.engine.cells {
		cellList[cellId] = r.renderCell(entry.engine, cellId, entry.engine.cells[cellId].Literal())
	}
	CellReads.Inc()

	return cellList, nil
}

func (r *SheetRepository) Undo(sheetId string) error {
	entry, err := r.lookupSheet(sheetId)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.engine.Undo(); err != nil {
		return err
	}
	HistoryMoves.WithLabelValues("undo").Inc()
	return nil
}

func (r *SheetRepository) Redo(sheetId string) error {
	entry, err := r.lookupSheet(sheetId)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.engine.Redo()
	HistoryMoves.WithLabelValues("redo").Inc()
	return nil
}

// ClassifyValue turns the string the API carries into a typed cell value:
// integer, float, formula, or plain text.
func ClassifyValue(raw string) contracts.Value {
	if strings.HasPrefix(raw, contracts.FormulaPrefix) {
		return contracts.TextValue(raw)
	}
	if intValue, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return contracts.IntValue(intValue)
	}
	if floatValue, err := strconv.ParseFloat(raw, 64); err == nil {
		return contracts.FloatValue(floatValue)
	}
	return contracts.TextValue(raw)
}

// renderCell evaluates a cell for the response envelope. Evaluation stays
// lazy and best-effort here: a formula that cannot evaluate yet does not
// fail the surrounding operation, its result carries the error text.
func (r *SheetRepository) renderCell(engine *Spreadsheet, cellId string, raw string) *contracts.Cell {
	cell := &contracts.Cell{Id: cellId, Value: raw}

	value, err := engine.GetCellValue(cellId)
	if err != nil {
		EvaluationErrors.Inc()
		cell.Result = "ERROR: " + err.Error()
		return cell
	}

	cell.Result = value.Literal()
	return cell
}

func (r *SheetRepository) obtainSheet(sheetId string) *sheetEntry {
	sheetId = strings.ToLower(sheetId)

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sheets[sheetId]
	if !ok {
		entry = &sheetEntry{engine: NewSpreadsheet(r.executor, r.logger, r.maxDepth)}
		r.sheets[sheetId] = entry
	}
	return entry
}

func (r *SheetRepository) lookupSheet(sheetId string) (*sheetEntry, error) {
	sheetId = strings.ToLower(sheetId)

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sheets[sheetId]
	if !ok {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}
	return entry, nil
}

package contracts

// Spreadsheet is one in-memory cell store with formula evaluation and a
// linear undo/redo history. Implementations are single-threaded; a caller
// that shares an instance must serialize access itself.
type Spreadsheet interface {
	// SetCellValue validates the id, updates dependency bookkeeping when
	// the value is a formula, records history and commits. Fails with
	// InvalidCellIdError or CircularReferenceError, leaving prior state
	// untouched.
	SetCellValue(cellId string, value Value) error

	// GetCellValue returns a literal as written, or lazily evaluates a
	// formula cell to a float. Fails with CellNotFoundError,
	// InvalidFormulaError, CircularReferenceError or MissingFormulaError.
	GetCellValue(cellId string) (Value, error)

	// Undo reverts the most recent write. No-op without history. May
	// propagate CircularReferenceError when a restored stale formula no
	// longer fits the dependency graph.
	Undo() error

	// Redo re-applies the most recently undone write. No-op without
	// future history.
	Redo()
}

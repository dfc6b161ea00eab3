package contracts

// SheetRepository maps sheet ids to spreadsheet instances and serializes
// access per sheet. Sheet ids are case-insensitive; cell values travel as
// strings and are classified on write (int, float, text, formula).
type SheetRepository interface {
	SetCell(sheetId string, cellId string, value string) (*Cell, error)
	GetCell(sheetId string, cellId string) (*Cell, error)
	GetCellList(sheetId string) (CellList, error)
	Undo(sheetId string) error
	Redo(sheetId string) error
}

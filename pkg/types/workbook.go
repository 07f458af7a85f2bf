package types

// Workbook is the persistence collaborator the generator relies on. It
// exposes exactly the two operations the core needs: loading the clue pool
// and overwriting named tables.
type Workbook interface {
	// ReadCluePool loads the ordered clue pool from the named sheet.
	// Returns ErrEmptyPool (wrapped) when the sheet holds no usable clue
	// rows, and ErrSheetNotFound (wrapped) when the sheet does not exist.
	ReadCluePool(sheet string) ([]Clue, error)

	// WriteTable replaces the named table's contents with rows, creating
	// the table if it does not exist. The overwrite is idempotent:
	// writing the same rows twice leaves the same table.
	WriteTable(name string, rows [][]string) error

	// Close releases the underlying store. Idempotent.
	Close() error
}

package types

import (
	"errors"
	"fmt"
)

// Generation and workbook errors.
var (
	ErrInsufficientClues = errors.New("need at least 2 clues to generate a hunt")
	ErrGroupCountInvalid = errors.New("group count must be positive")
	ErrEmptyPool         = errors.New("no clues found in sheet")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrWorkbookClosed    = errors.New("workbook is closed")
)

// UnsatisfiableError reports that no ordering satisfying the cross-group
// constraints was found for a group within the attempt budget. It aborts
// the whole run.
type UnsatisfiableError struct {
	Group    int
	Attempts int
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("could not generate valid sequence for group %d after %d attempts; try using more clues or fewer groups",
		e.Group, e.Attempts)
}

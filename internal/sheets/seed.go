package sheets

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/hunt/pkg/types"
)

// sampleClues is the starter clue sheet written by SeedSampleClues,
// header row included. Column A is the question, column B the answer or
// hiding spot, column C the optional Person/Place type.
var sampleClues = [][]string{
	{"Clue", "Answer/Location/Person", "Type"},
	{"What has keys but can't open locks?", "Piano", "Place"},
	{"What has a face and two hands but no arms or legs?", "Clock", "Place"},
	{"Who created this scavenger hunt?", "Kevin", "Person"},
	{"Where do you cook your meals?", "Kitchen", "Place"},
	{"Who is your favorite teacher?", "Mrs. Smith", "Person"},
	{"What room has books but no bookshelf?", "Library", "Place"},
	{"Where do cars sleep at night?", "Garage", "Place"},
	{"Who can help you check out a book?", "Librarian", "Person"},
	{"What's the coldest appliance in the house?", "Refrigerator", "Place"},
	{"Where do you wash your hands before dinner?", "Bathroom sink", "Place"},
}

// SeedSampleClues writes the sample clue sheet when the named sheet is
// absent or empty, and reports whether it wrote anything. Seeding an
// already-populated sheet is a no-op.
func (s *Store) SeedSampleClues(sheet string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return false, types.ErrWorkbookClosed
	}

	id, err := s.sheetID(sheet)
	switch {
	case err == nil:
		var count int
		if err := s.db.QueryRow(
			"SELECT COUNT(*) FROM cells WHERE sheet_id = ?", id).Scan(&count); err != nil {
			return false, fmt.Errorf("counting cells: %w", err)
		}
		if count > 0 {
			return false, nil
		}
	case errors.Is(err, types.ErrSheetNotFound):
		// Sheet will be created by the write below.
	default:
		return false, err
	}

	if err := s.writeTableLocked(sheet, sampleClues); err != nil {
		return false, err
	}
	return true, nil
}

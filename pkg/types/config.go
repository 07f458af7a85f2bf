package types

import "errors"

// DefaultInputSheet is the sheet the clue pool is read from when the
// configuration does not name one.
const DefaultInputSheet = "Clues"

// Config holds workbook location and input sheet selection.
type Config struct {
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	InputSheet string `json:"input_sheet" yaml:"input_sheet"`
}

// Config validation errors.
var (
	ErrInputSheetEmpty = errors.New("input sheet must not be empty")
)

// Validate checks that the Config is well-formed. An empty DataDir is
// allowed and resolves to the current directory.
func (c Config) Validate() error {
	if c.InputSheet == "" {
		return ErrInputSheetEmpty
	}
	return nil
}

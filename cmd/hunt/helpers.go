// Shared helpers for hunt CLI commands.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/hunt/internal/sheets"
	"github.com/mesh-intelligence/hunt/pkg/types"
)

// openWorkbook resolves the data directory and opens the SQLite workbook.
// The caller must defer store.Close().
func openWorkbook() (*sheets.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		DataDir:    dataDir,
		InputSheet: inputSheet(),
	}

	store, err := sheets.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return store, nil
}

// inputSheet returns the configured clue sheet name.
func inputSheet() string {
	if configInputSheet != "" {
		return configInputSheet
	}
	return types.DefaultInputSheet
}

// Package sheets implements the SQLite-backed workbook the hunt generator
// reads clues from and persists tables to. A workbook is a set of named
// sheets, each a grid of string cells; tables are written with
// clear-then-write semantics so repeated runs overwrite rather than append.
package sheets

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/hunt/pkg/types"
)

// Store implements types.Workbook on a local SQLite database.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates the data directory if needed, opens (or creates) hunt.db
// inside it, and applies the schema.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "hunt.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database. Idempotent; operations after Close return
// ErrWorkbookClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ReadCluePool loads the ordered clue pool from the named sheet. A leading
// header row is skipped when its first cell reads "clue" or "question".
// Rows missing a question or answer are skipped silently. The optional
// third column supplies the category, trimmed of whitespace.
func (s *Store) ReadCluePool(sheet string) ([]types.Clue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, types.ErrWorkbookClosed
	}

	grid, err := s.readGrid(sheet)
	if err != nil {
		return nil, err
	}

	start := 0
	if len(grid) > 0 && len(grid[0]) > 0 {
		switch strings.ToLower(strings.TrimSpace(grid[0][0])) {
		case "clue", "question":
			start = 1
		}
	}

	var clues []types.Clue
	for _, row := range grid[start:] {
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" || strings.TrimSpace(row[1]) == "" {
			continue
		}
		clue := types.Clue{
			Question: strings.TrimSpace(row[0]),
			Answer:   strings.TrimSpace(row[1]),
			Category: types.CategoryOther,
		}
		if len(row) >= 3 {
			clue.Category = types.ParseCategory(row[2])
		}
		clues = append(clues, clue)
	}

	if len(clues) == 0 {
		return nil, fmt.Errorf("%w %q", types.ErrEmptyPool, sheet)
	}
	return clues, nil
}

// WriteTable replaces the named sheet's contents with rows, creating the
// sheet if absent. The clear and the inserts run in one transaction.
func (s *Store) WriteTable(name string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.ErrWorkbookClosed
	}
	return s.writeTableLocked(name, rows)
}

// ReadTable returns the named sheet's grid in row-major order.
func (s *Store) ReadTable(name string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, types.ErrWorkbookClosed
	}
	return s.readGrid(name)
}

// writeTableLocked performs the clear-then-write. Caller holds s.mu.
func (s *Store) writeTableLocked(name string, rows [][]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin write: %w", err)
	}
	defer tx.Rollback()

	id, err := ensureSheet(tx, name)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM cells WHERE sheet_id = ?", id); err != nil {
		return fmt.Errorf("clearing sheet %q: %w", name, err)
	}
	for r, row := range rows {
		for c, value := range row {
			if _, err := tx.Exec(
				"INSERT INTO cells (sheet_id, row_idx, col_idx, value) VALUES (?, ?, ?, ?)",
				id, r, c, value); err != nil {
				return fmt.Errorf("writing sheet %q: %w", name, err)
			}
		}
	}

	return tx.Commit()
}

// ensureSheet returns the named sheet's ID, creating the sheet row if it
// does not exist.
func ensureSheet(tx *sql.Tx, name string) (string, error) {
	var id string
	err := tx.QueryRow("SELECT sheet_id FROM sheets WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("looking up sheet %q: %w", name, err)
	}

	id = newUUID()
	if _, err := tx.Exec(
		"INSERT INTO sheets (sheet_id, name, created_at) VALUES (?, ?, ?)",
		id, name, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return "", fmt.Errorf("creating sheet %q: %w", name, err)
	}
	return id, nil
}

// sheetID returns the ID of the named sheet. Caller holds s.mu.
func (s *Store) sheetID(name string) (string, error) {
	var id string
	err := s.db.QueryRow("SELECT sheet_id FROM sheets WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", types.ErrSheetNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("looking up sheet %q: %w", name, err)
	}
	return id, nil
}

// readGrid loads the named sheet as a dense [][]string in row-major order.
// Caller holds s.mu.
func (s *Store) readGrid(name string) ([][]string, error) {
	id, err := s.sheetID(name)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT row_idx, col_idx, value FROM cells WHERE sheet_id = ? ORDER BY row_idx, col_idx", id)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", name, err)
	}
	defer rows.Close()

	var grid [][]string
	for rows.Next() {
		var r, c int
		var value string
		if err := rows.Scan(&r, &c, &value); err != nil {
			return nil, fmt.Errorf("scanning cell: %w", err)
		}
		for len(grid) <= r {
			grid = append(grid, nil)
		}
		for len(grid[r]) <= c {
			grid[r] = append(grid[r], "")
		}
		grid[r][c] = value
	}
	return grid, rows.Err()
}

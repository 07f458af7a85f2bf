package sheets

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/hunt/pkg/types"
)

// Run is one recorded generation run: how the RNG was seeded, the group
// count, and the pool size it ran against.
type Run struct {
	RunID      string    `json:"run_id"`
	Seed       int64     `json:"seed"`
	Seeded     bool      `json:"seeded"` // true when the seed was given explicitly
	GroupCount int       `json:"group_count"`
	ClueCount  int       `json:"clue_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecordRun stores a run history row. A missing RunID gets a fresh UUID
// v7; a zero CreatedAt gets the current time. Returns the run ID.
func (s *Store) RecordRun(r Run) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return "", types.ErrWorkbookClosed
	}

	if r.RunID == "" {
		r.RunID = newUUID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	seeded := 0
	if r.Seeded {
		seeded = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO runs (run_id, seed, seeded, group_count, clue_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Seed, seeded, r.GroupCount, r.ClueCount,
		r.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("recording run: %w", err)
	}
	return r.RunID, nil
}

// ListRuns returns recorded runs, most recent first.
func (s *Store) ListRuns() ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, types.ErrWorkbookClosed
	}

	rows, err := s.db.Query(
		"SELECT run_id, seed, seeded, group_count, clue_count, created_at FROM runs ORDER BY created_at DESC, run_id DESC")
	if err != nil {
		return nil, fmt.Errorf("fetching runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var seeded int
		var createdAt string
		if err := rows.Scan(&r.RunID, &r.Seed, &seeded, &r.GroupCount, &r.ClueCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Seeded = seeded != 0
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run created_at: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

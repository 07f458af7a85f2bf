package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hunt/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(types.Config{
		DataDir:    t.TempDir(),
		InputSheet: types.DefaultInputSheet,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenInvalidConfig(t *testing.T) {
	_, err := Open(types.Config{DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrInputSheetEmpty)
}

func TestWriteTableRoundTrip(t *testing.T) {
	store := newTestStore(t)

	rows := [][]string{
		{"Location", "Clue"},
		{"Hide this at/with: Piano", "2. Where do you cook your meals?"},
	}
	require.NoError(t, store.WriteTable("Group 1", rows))

	got, err := store.ReadTable("Group 1")
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestWriteTableOverwrites(t *testing.T) {
	store := newTestStore(t)

	big := [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}}
	require.NoError(t, store.WriteTable("Master", big))

	small := [][]string{{"x", "y"}, {"z", "w"}}
	require.NoError(t, store.WriteTable("Master", small))

	got, err := store.ReadTable("Master")
	require.NoError(t, err)
	assert.Equal(t, small, got)
}

func TestReadTableMissingSheet(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ReadTable("nope")
	assert.ErrorIs(t, err, types.ErrSheetNotFound)
}

func TestReadCluePool(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.WriteTable("Clues", [][]string{
		{"Clue", "Answer/Location/Person", "Type"},
		{"  Where do cars sleep at night?  ", " Garage ", "Place"},
		{"Who created this scavenger hunt?", "Kevin", "person"},
		{"", "orphan answer"},
		{"question without an answer", "  "},
		{"What has keys but can't open locks?", "Piano"},
	}))

	pool, err := store.ReadCluePool("Clues")
	require.NoError(t, err)
	require.Len(t, pool, 3)

	assert.Equal(t, types.Clue{
		Question: "Where do cars sleep at night?",
		Answer:   "Garage",
		Category: types.CategoryPlace,
	}, pool[0])
	assert.Equal(t, types.CategoryPerson, pool[1].Category)

	// Missing type column defaults to other.
	assert.Equal(t, types.CategoryOther, pool[2].Category)
}

func TestReadCluePoolNoHeader(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.WriteTable("Clues", [][]string{
		{"Where do you cook your meals?", "Kitchen", "Place"},
		{"Who is your favorite teacher?", "Mrs. Smith", "Person"},
	}))

	pool, err := store.ReadCluePool("Clues")
	require.NoError(t, err)
	assert.Len(t, pool, 2)
}

func TestReadCluePoolEmpty(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.WriteTable("Clues", [][]string{
		{"Clue", "Answer/Location/Person", "Type"},
	}))

	_, err := store.ReadCluePool("Clues")
	assert.ErrorIs(t, err, types.ErrEmptyPool)
}

func TestSeedSampleClues(t *testing.T) {
	store := newTestStore(t)

	seeded, err := store.SeedSampleClues("Clues")
	require.NoError(t, err)
	assert.True(t, seeded)

	pool, err := store.ReadCluePool("Clues")
	require.NoError(t, err)
	assert.Len(t, pool, 10)

	// Second seed is a no-op.
	seeded, err = store.SeedSampleClues("Clues")
	require.NoError(t, err)
	assert.False(t, seeded)

	again, err := store.ReadCluePool("Clues")
	require.NoError(t, err)
	assert.Equal(t, pool, again)
}

func TestRecordAndListRuns(t *testing.T) {
	store := newTestStore(t)

	older := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	_, err := store.RecordRun(Run{Seed: 42, Seeded: true, GroupCount: 3, ClueCount: 10, CreatedAt: older})
	require.NoError(t, err)
	id, err := store.RecordRun(Run{Seed: 7, GroupCount: 2, ClueCount: 8, CreatedAt: newer})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Most recent first.
	assert.Equal(t, id, runs[0].RunID)
	assert.False(t, runs[0].Seeded)
	assert.Equal(t, newer, runs[0].CreatedAt)

	assert.True(t, runs[1].Seeded)
	assert.Equal(t, int64(42), runs[1].Seed)
	assert.Equal(t, 3, runs[1].GroupCount)
	assert.Equal(t, 10, runs[1].ClueCount)
}

func TestCloseIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	_, err := store.ReadCluePool("Clues")
	assert.ErrorIs(t, err, types.ErrWorkbookClosed)

	err = store.WriteTable("Master", nil)
	assert.ErrorIs(t, err, types.ErrWorkbookClosed)

	_, err = store.ListRuns()
	assert.ErrorIs(t, err, types.ErrWorkbookClosed)
}

var _ types.Workbook = (*Store)(nil)

package sheets

// Schema DDL for the workbook store. Applied idempotently on Open so an
// existing workbook is reused rather than recreated.
const (
	createSheets = `CREATE TABLE IF NOT EXISTS sheets (
    sheet_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL
);`

	createCells = `CREATE TABLE IF NOT EXISTS cells (
    sheet_id TEXT NOT NULL,
    row_idx INTEGER NOT NULL,
    col_idx INTEGER NOT NULL,
    value TEXT NOT NULL,
    PRIMARY KEY (sheet_id, row_idx, col_idx),
    FOREIGN KEY (sheet_id) REFERENCES sheets(sheet_id)
);`

	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    seed INTEGER NOT NULL,
    seeded INTEGER NOT NULL,
    group_count INTEGER NOT NULL,
    clue_count INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxRunsCreated = `CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createSheets,
	createCells,
	createRuns,
	idxRunsCreated,
}

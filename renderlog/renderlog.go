// Package renderlog provides SQLite-backed logging of render runs.
// Each Apply or Redraw appends one row of derived statistics (expansion
// length, segment count, timing, warnings). No configuration is stored
// or reloadable from here; the log exists for inspection, not
// persistence of settings.
package renderlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/verdantlab/go-lsys/engine"
)

// Store handles SQLite database operations for render-run logging.
type Store struct {
	db *sql.DB
}

// Entry is one recorded render run.
type Entry struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Trigger       string    `json:"trigger"`
	Iterations    int       `json:"iterations"`
	ExpandedLen   int       `json:"expanded_len"`
	SegmentCount  int       `json:"segment_count"`
	UnmatchedPops int       `json:"unmatched_pops"`
	CeilingWarned bool      `json:"ceiling_warned"`
	DurationMS    int64     `json:"duration_ms"`
}

// Open creates a store at the given database path. Use ":memory:" for
// an ephemeral log.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		trigger_kind TEXT NOT NULL,
		iterations INTEGER NOT NULL,
		expanded_len INTEGER NOT NULL,
		segment_count INTEGER NOT NULL,
		unmatched_pops INTEGER NOT NULL DEFAULT 0,
		ceiling_warned INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`
	_, err := s.db.Exec(schema)
	return err
}

// Record appends one run. It satisfies engine.RunSink.
func (s *Store) Record(run engine.Run) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (id, created_at, trigger_kind, iterations, expanded_len,
			segment_count, unmatched_pops, ceiling_warned, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), time.Now().UTC(), run.Trigger, run.Iterations,
		run.ExpandedLen, run.SegmentCount, run.UnmatchedPops,
		run.CeilingWarned, run.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns the most recent n runs, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at, trigger_kind, iterations, expanded_len,
			segment_count, unmatched_pops, ceiling_warned, duration_ms
		FROM runs ORDER BY created_at DESC, id LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Trigger, &e.Iterations,
			&e.ExpandedLen, &e.SegmentCount, &e.UnmatchedPops,
			&e.CeilingWarned, &e.DurationMS); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the total number of recorded runs.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

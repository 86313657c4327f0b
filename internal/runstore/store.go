// Package runstore persists a record of every bake/decode invocation to a local SQLite
// database, so past runs can be inspected with `vntrhmm history`. Grounded on
// kibbyd-adaptive-state's internal/graph/graph.go (schema-as-constant, GraphStore{db *sql.DB}
// wrapping pattern).
package runstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//#region schema

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	model_name TEXT NOT NULL,
	sequence_length INTEGER NOT NULL,
	log_probability REAL,
	path_length INTEGER,
	duration_ms INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

//#endregion

// RunRecord is one row: a bake or decode invocation.
type RunRecord struct {
	ID             string
	Kind           string // "bake", "viterbi", "forward", "subseq"
	ModelName      string
	SequenceLength int
	LogProbability *float64
	PathLength     *int
	DurationMS     int64
	CreatedAt      time.Time
}

// Store wraps a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("runstore: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("runstore: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run row.
func (s *Store) Record(ctx context.Context, r RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, kind, model_name, sequence_length, log_probability, path_length, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Kind, r.ModelName, r.SequenceLength, r.LogProbability, r.PathLength, r.DurationMS,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("runstore: record run %s: %w", r.ID, err)
	}
	return nil
}

// Recent returns the most recently created rows, newest first, up to limit.
func (s *Store) Recent(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, model_name, sequence_length, log_probability, path_length, duration_ms, created_at
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("runstore: query recent: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Kind, &r.ModelName, &r.SequenceLength,
			&r.LogProbability, &r.PathLength, &r.DurationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("runstore: scan row: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("runstore: parse created_at: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("runstore: iterate rows: %w", err)
	}
	return out, nil
}

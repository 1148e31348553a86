// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/lexiscan/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for analysis run history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			source TEXT NOT NULL,
			input_bytes INTEGER NOT NULL,
			alpha_chars INTEGER NOT NULL,
			unique_words INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_words (
			run_id INTEGER NOT NULL,
			rank INTEGER NOT NULL,
			word TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (run_id, rank)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a completed analysis run and its top words.
func (s *Store) InsertRun(ctx context.Context, stats model.RunStats, topWords []model.WordCount) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	// No-op once the transaction is committed.
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, source, input_bytes, alpha_chars, unique_words, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		stats.StartedAt.Format(time.RFC3339Nano),
		stats.Source,
		stats.InputBytes,
		stats.AlphaChars,
		stats.UniqueWords,
		stats.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(topWords) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO run_words (run_id, rank, word, count) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() { _ = stmt.Close() }()
		for rank, wc := range topWords {
			if _, err := stmt.ExecContext(ctx, id, rank+1, wc.Word, wc.Count); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns returns run aggregates filtered by the provided filter,
// oldest first.
func (s *Store) ListRuns(ctx context.Context, filter model.RunsFilter) ([]model.RunAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Since != nil {
		clauses = append(clauses, "started_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, started_at, source, input_bytes, alpha_chars, unique_words, duration_ms
		FROM runs
		WHERE %s
		ORDER BY started_at ASC`, strings.Join(clauses, " AND "))
	if filter.Last > 0 {
		// Limit in SQL so the whole history is never loaded.
		query = fmt.Sprintf(`SELECT id, started_at, source, input_bytes, alpha_chars, unique_words, duration_ms
			FROM (SELECT * FROM runs WHERE %s ORDER BY started_at DESC LIMIT ?)
			ORDER BY started_at ASC`, strings.Join(clauses, " AND "))
		args = append(args, filter.Last)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []model.RunAggregate
	for rows.Next() {
		var run model.RunAggregate
		var startedAt string
		if err := rows.Scan(&run.RunID, &startedAt, &run.Source, &run.InputBytes, &run.AlphaChars, &run.UniqueWords, &run.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		run.StartedAt = parsed
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetRunWords returns the stored top words for a run in rank order.
func (s *Store) GetRunWords(ctx context.Context, runID int64) ([]model.WordCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, count FROM run_words WHERE run_id = ? ORDER BY rank ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var words []model.WordCount
	for rows.Next() {
		var wc model.WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, err
		}
		words = append(words, wc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

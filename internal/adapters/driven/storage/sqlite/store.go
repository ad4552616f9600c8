// Package sqlite persists notebook run history in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/notebook-ci/nbcheck/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/notebook-ci/nbcheck/internal/core/domain"
	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RunStore = (*Store)(nil)

// Store is a SQLite-backed run-history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.nbcheck/data/runs.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".nbcheck", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "runs.db")

	// WAL mode for better concurrency between check and history commands.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// migrate applies the embedded migration files in lexical order.
func (s *Store) migrate(fsys fs.FS) error {
	entries, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)
	for _, name := range entries {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(data)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveRun records one notebook evaluation.
func (s *Store) SaveRun(ctx context.Context, rec domain.RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, notebook_path, kernel, static_passed, dynamic_passed, defect_count, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.NotebookPath,
		rec.Kernel,
		boolToInt(rec.StaticPassed),
		boolToInt(rec.DynamicPassed),
		rec.DefectCount,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first, up to limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	query := `
		SELECT id, notebook_path, kernel, static_passed, dynamic_passed, defect_count, started_at, duration_ms
		FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var recs []domain.RunRecord
	for rows.Next() {
		var (
			rec              domain.RunRecord
			staticI, dynI    int
			startedAt        string
			durationMillisec int64
		)
		if err := rows.Scan(&rec.ID, &rec.NotebookPath, &rec.Kernel, &staticI, &dynI, &rec.DefectCount, &startedAt, &durationMillisec); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rec.StaticPassed = staticI != 0
		rec.DynamicPassed = dynI != 0
		rec.Duration = time.Duration(durationMillisec) * time.Millisecond
		if ts, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			rec.StartedAt = ts
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

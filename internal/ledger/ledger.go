// Package ledger records solved answers in a sqlite database so past runs
// can be compared and listed.
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"advent2020/internal/puzzle"
)

// Store manages the run ledger database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Run is one recorded solve.
type Run struct {
	ID        string
	Day       int
	Part      int
	Answer    int
	InputPath string
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens the ledger at dbPath.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		day INTEGER NOT NULL,
		part INTEGER NOT NULL,
		answer INTEGER NOT NULL,
		input_path TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_day_part ON runs(day, part);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores a successful result. Failed results are not recorded.
func (s *Store) Record(res puzzle.Result, inputPath string) (string, error) {
	if res.Err != nil {
		return "", fmt.Errorf("refusing to record failed run for day %d part %d: %w", res.Day, res.Part, res.Err)
	}
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, day, part, answer, input_path, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, res.Day, res.Part, res.Answer, inputPath,
		res.Duration.Milliseconds(), time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}
	return id, nil
}

// History returns the most recent runs, newest first. A day of 0 means all
// days.
func (s *Store) History(day, limit int) ([]Run, error) {
	query := `SELECT id, day, part, answer, input_path, duration_ms, created_at
	          FROM runs`
	args := []any{}
	if day > 0 {
		query += " WHERE day = ?"
		args = append(args, day)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		if err := rows.Scan(&r.ID, &r.Day, &r.Part, &r.Answer, &r.InputPath, &durationMS, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

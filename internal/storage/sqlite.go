// Package storage keeps the history of runs finished in this process.
// It uses the pure-Go modernc.org/sqlite driver against an in-memory
// database: nothing is written to disk and the history ends with the
// process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/neon-drive/internal/core"
)

// Store is the session history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// RunRecord is one finished run.
type RunRecord struct {
	ID        int64
	Player    string
	Variant   string
	Mode      string
	FinalTime float64
	Penalty   float64
	Medal     string
	Grade     string
	Clean     bool
	MissionOK bool
	CreatedAt time.Time
}

// OpenMemory creates an empty in-memory history.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every new connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			variant TEXT NOT NULL,
			mode TEXT NOT NULL,
			final_time REAL NOT NULL,
			penalty REAL NOT NULL,
			medal TEXT NOT NULL,
			grade TEXT NOT NULL,
			clean INTEGER NOT NULL,
			mission_ok INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(variant, final_time ASC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the history.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(sum core.RunSummary) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (player, variant, mode, final_time, penalty, medal, grade, clean, mission_ok, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.Player, sum.Variant, sum.Mode, sum.FinalTime, sum.Penalty,
		sum.Medal, sum.Grade, sum.Clean, sum.MissionOK, s.now().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const selectRuns = `SELECT id, player, variant, mode, final_time, penalty, medal, grade, clean, mission_ok, created_at FROM runs`

// RecentRuns returns the latest runs of a variant, newest first.
func (s *Store) RecentRuns(variant string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectRuns+` WHERE variant = ? ORDER BY id DESC LIMIT ?`, variant, limit)
}

// Leaderboard returns the fastest runs of a variant this session.
// Ties go to the run with less penalty, then the earlier run.
func (s *Store) Leaderboard(variant string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectRuns+` WHERE variant = ? ORDER BY final_time ASC, penalty ASC, id ASC LIMIT ?`, variant, limit)
}

// BestRun returns the fastest run of a variant, or nil if there is none.
func (s *Store) BestRun(variant string) (*RunRecord, error) {
	runs, err := s.Leaderboard(variant, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// Count returns the number of runs recorded for a variant.
func (s *Store) Count(variant string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE variant = ?", variant).Scan(&n)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

func (s *Store) query(q string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Player, &r.Variant, &r.Mode, &r.FinalTime, &r.Penalty,
			&r.Medal, &r.Grade, &r.Clean, &r.MissionOK, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = time.UnixMilli(createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

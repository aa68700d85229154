// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is a finished run on a track. Score is the whole distance covered.
type Run struct {
	ID        int64
	RunID     string
	TrackID   string
	Score     int
	Distance  float64
	Jumps     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
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
			run_id TEXT NOT NULL UNIQUE,
			track_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			jumps INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_track_id ON runs(track_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(track_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its generated run ID.
// Score is derived from the distance when left zero.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.Score == 0 && r.Distance > 0 {
		r.Score = int(r.Distance)
	}

	_, err := s.db.Exec(
		"INSERT INTO runs (run_id, track_id, score, distance, jumps) VALUES (?, ?, ?, ?, ?)",
		r.RunID, r.TrackID, r.Score, r.Distance, r.Jumps,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.RunID, nil
}

// TopRuns retrieves the best N runs for the given track, by score descending.
func (s *Store) TopRuns(trackID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, track_id, score, distance, jumps, created_at
		 FROM runs
		 WHERE track_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		trackID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RecentRuns retrieves the latest N runs across all tracks.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, track_id, score, distance, jumps, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RunByID looks a run up by its run ID. Returns nil if not found.
func (s *Store) RunByID(runID string) (*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, track_id, score, distance, jumps, created_at
		 FROM runs WHERE run_id = ?`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	runs, err := scanRuns(rows)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.TrackID, &r.Score, &r.Distance, &r.Jumps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the best score for the given track, or 0 if none exist.
func (s *Store) HighScore(trackID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE track_id = ?",
		trackID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given track.
func (s *Store) ClearRuns(trackID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE track_id = ?", trackID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// TrackStats contains aggregated statistics for a track.
type TrackStats struct {
	TrackID       string
	RunsCount     int
	HighScore     int
	AvgDistance   float64
	TotalDistance float64
	TotalJumps    int64
	LastPlayed    time.Time
}

// GetTrackStats retrieves aggregated statistics for a specific track.
func (s *Store) GetTrackStats(trackID string) (*TrackStats, error) {
	stats := &TrackStats{TrackID: trackID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(distance), 0),
		        COALESCE(SUM(distance), 0), COALESCE(SUM(jumps), 0)
		 FROM runs WHERE track_id = ?`,
		trackID,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgDistance, &stats.TotalDistance, &stats.TotalJumps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get track stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE track_id = ? ORDER BY id DESC LIMIT 1`,
		trackID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllTracksStats retrieves statistics for every track that has runs.
func (s *Store) GetAllTracksStats() (map[string]*TrackStats, error) {
	rows, err := s.db.Query(
		`SELECT track_id, COUNT(*), MAX(score), AVG(distance), SUM(distance), SUM(jumps), MAX(created_at)
		 FROM runs
		 GROUP BY track_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all tracks stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*TrackStats)
	for rows.Next() {
		var ts TrackStats
		var lastPlayed any
		if err := rows.Scan(&ts.TrackID, &ts.RunsCount, &ts.HighScore, &ts.AvgDistance,
			&ts.TotalDistance, &ts.TotalJumps, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ts.LastPlayed = parseTime(lastPlayed)
		stats[ts.TrackID] = &ts
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

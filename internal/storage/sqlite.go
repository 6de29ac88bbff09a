// Package storage provides the SQLite run journal: one row per finished
// session with its movement statistics. Map and player state are never stored.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/raycaster/internal/core"
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is a single journal entry.
type Run struct {
	ID        int64
	ArenaID   string
	Ticks     uint64
	Distance  float64
	Moves     int
	Slides    int
	Blocked   int
	CreatedAt time.Time
}

// RunFromSummary builds an unsaved journal entry for a session.
func RunFromSummary(arenaID string, s core.RunSummary) Run {
	return Run{
		ArenaID:  arenaID,
		Ticks:    s.Ticks,
		Distance: s.Distance,
		Moves:    s.Moves,
		Slides:   s.Slides,
		Blocked:  s.Blocked,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			arena_id TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			slides INTEGER NOT NULL DEFAULT 0,
			blocked INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_arena_id ON runs(arena_id);
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

// ErrEmptyRun is returned when saving a run that never ticked.
var ErrEmptyRun = errors.New("storage: run has no ticks")

// SaveRun records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Ticks == 0 {
		return 0, ErrEmptyRun
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (arena_id, ticks, distance, moves, slides, blocked)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ArenaID, int64(r.Ticks), r.Distance, r.Moves, r.Slides, r.Blocked,
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

// RecentRuns retrieves the latest runs for the given arena, newest first.
func (s *Store) RecentRuns(arenaID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, arena_id, ticks, distance, moves, slides, blocked, created_at
		 FROM runs
		 WHERE arena_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		arenaID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.ArenaID, &ticks, &r.Distance, &r.Moves, &r.Slides, &r.Blocked, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes all runs for the given arena.
func (s *Store) ClearRuns(arenaID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE arena_id = ?", arenaID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ArenaStats contains aggregated statistics for an arena.
type ArenaStats struct {
	ArenaID       string
	Runs          int
	TotalTicks    int64
	TotalDistance float64
	BestDistance  float64
	Slides        int64
	Blocked       int64
	LastPlayed    time.Time
}

// ArenaStats retrieves aggregated statistics for a specific arena.
// An arena without runs yields zero values.
func (s *Store) ArenaStats(arenaID string) (*ArenaStats, error) {
	stats := &ArenaStats{ArenaID: arenaID}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(distance), 0), COALESCE(MAX(distance), 0),
		        COALESCE(SUM(slides), 0), COALESCE(SUM(blocked), 0), MAX(created_at)
		 FROM runs WHERE arena_id = ?`,
		arenaID,
	).Scan(&stats.Runs, &stats.TotalTicks, &stats.TotalDistance, &stats.BestDistance,
		&stats.Slides, &stats.Blocked, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get arena stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllArenaStats retrieves statistics for every arena that has runs.
func (s *Store) AllArenaStats() (map[string]*ArenaStats, error) {
	rows, err := s.db.Query(
		`SELECT arena_id, COUNT(*), SUM(ticks), SUM(distance), MAX(distance), SUM(slides), SUM(blocked), MAX(created_at)
		 FROM runs
		 GROUP BY arena_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all arena stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ArenaStats)
	for rows.Next() {
		var st ArenaStats
		var lastPlayed any
		if err := rows.Scan(&st.ArenaID, &st.Runs, &st.TotalTicks, &st.TotalDistance, &st.BestDistance,
			&st.Slides, &st.Blocked, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.ArenaID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

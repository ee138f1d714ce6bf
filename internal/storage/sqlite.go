// Package storage provides SQLite-based persistence for solutions and saved games.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SolutionEntry represents one recorded solution of a level.
type SolutionEntry struct {
	ID        int64
	LevelID   string
	Moves     string
	Steps     int
	Cycles    int
	CreatedAt time.Time
}

// SaveEntry represents a saved, unfinished game.
type SaveEntry struct {
	ID        string
	LevelID   string
	Moves     string
	Steps     int
	CreatedAt time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solutions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			moves TEXT NOT NULL,
			steps INTEGER NOT NULL,
			cycles INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solutions_level_id ON solutions(level_id);
		CREATE INDEX IF NOT EXISTS idx_solutions_best ON solutions(level_id, steps ASC);

		CREATE TABLE IF NOT EXISTS saves (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			level_id TEXT NOT NULL,
			moves TEXT NOT NULL,
			steps INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_saves_level_id ON saves(level_id);
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

// SaveSolution records a solution for the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveSolution(levelID, moves string, cycles int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO solutions (level_id, moves, steps, cycles) VALUES (?, ?, ?, ?)",
		levelID, moves, len([]rune(moves)), cycles,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solution: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolutions retrieves the shortest N solutions for the given level.
// Results are ordered by steps, then cycles.
func (s *Store) BestSolutions(levelID string, limit int) ([]SolutionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, moves, steps, cycles, created_at
		 FROM solutions
		 WHERE level_id = ?
		 ORDER BY steps ASC, cycles ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	defer rows.Close()

	var entries []SolutionEntry
	for rows.Next() {
		var e SolutionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Moves, &e.Steps, &e.Cycles, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// IsSolved reports whether any solution exists for the level.
func (s *Store) IsSolved(levelID string) (bool, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM solutions WHERE level_id = ?", levelID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	return n > 0, nil
}

// SolvedLevels returns the set of level IDs with at least one solution.
func (s *Store) SolvedLevels() (map[string]bool, error) {
	rows, err := s.db.Query("SELECT DISTINCT level_id FROM solutions")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solved levels: %w", err)
	}
	defer rows.Close()

	solved := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		solved[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solved, nil
}

// ClearSolutions deletes all solutions for the given level.
func (s *Store) ClearSolutions(levelID string) error {
	_, err := s.db.Exec("DELETE FROM solutions WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solutions: %w", err)
	}
	return nil
}

// SaveGame stores the move log of an unfinished game.
// Returns the generated save ID.
func (s *Store) SaveGame(levelID, moves string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO saves (id, level_id, moves, steps) VALUES (?, ?, ?, ?)",
		id, levelID, moves, len([]rune(moves)),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}
	return id, nil
}

// LatestSave returns the most recent save of the level, or nil if there is none.
func (s *Store) LatestSave(levelID string) (*SaveEntry, error) {
	var e SaveEntry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, level_id, moves, steps, created_at
		 FROM saves
		 WHERE level_id = ?
		 ORDER BY seq DESC
		 LIMIT 1`,
		levelID,
	).Scan(&e.ID, &e.LevelID, &e.Moves, &e.Steps, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query save: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// ListSaves retrieves the most recent saves of the level.
func (s *Store) ListSaves(levelID string, limit int) ([]SaveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, moves, steps, created_at
		 FROM saves
		 WHERE level_id = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var entries []SaveEntry
	for rows.Next() {
		var e SaveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Moves, &e.Steps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteSave removes one save by ID.
func (s *Store) DeleteSave(id string) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete save: %w", err)
	}
	return nil
}

// ClearSaves deletes all saves of the given level.
func (s *Store) ClearSaves(levelID string) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear saves: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Solved     int
	BestSteps  int
	AvgSteps   float64
	LastSolved time.Time
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(steps), 0), COALESCE(AVG(steps), 0)
		 FROM solutions WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Solved, &stats.BestSteps, &stats.AvgSteps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	var lastSolved any
	err = s.db.QueryRow(
		`SELECT created_at FROM solutions WHERE level_id = ? ORDER BY id DESC LIMIT 1`,
		levelID,
	).Scan(&lastSolved)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last solved: %w", err)
	}
	if err == nil {
		stats.LastSolved = parseTime(lastSolved)
	}

	return stats, nil
}

// GetAllLevelStats retrieves statistics for every level with solutions.
func (s *Store) GetAllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(steps), AVG(steps), MAX(created_at)
		 FROM solutions
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastSolved any
		if err := rows.Scan(&ls.LevelID, &ls.Solved, &ls.BestSteps, &ls.AvgSteps, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastSolved = parseTime(lastSolved)
		stats[ls.LevelID] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles datetimes returned either as time.Time or as text.
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

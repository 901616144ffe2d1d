// Package storage provides SQLite-based persistence for player progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pixelquest/internal/engine"
	"github.com/vovakirdan/pixelquest/internal/persistence/snapshot"
	"github.com/vovakirdan/pixelquest/internal/quest"
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// SlotInfo describes a stored save slot.
type SlotInfo struct {
	Slot      string
	Version   int
	XP        int
	Level     int
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			version INTEGER NOT NULL,
			xp INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			payload BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS quest_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot TEXT NOT NULL,
			quest_id TEXT NOT NULL,
			title TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			category TEXT NOT NULL,
			status TEXT NOT NULL,
			xp INTEGER NOT NULL DEFAULT 0,
			completed_at INTEGER NOT NULL DEFAULT 0,
			UNIQUE(slot, quest_id)
		);
		CREATE INDEX IF NOT EXISTS idx_quest_history_slot ON quest_history(slot);
		CREATE INDEX IF NOT EXISTS idx_quest_history_completed ON quest_history(slot, completed_at DESC);
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

// SaveGame stores save under slot and archives its quest history. Archived
// quests are kept even after they leave the save, so statistics cover the
// whole lifetime of the slot.
func (s *Store) SaveGame(slot string, save snapshot.Save) error {
	payload, err := snapshot.Encode(save)
	if err != nil {
		return fmt.Errorf("storage: cannot encode save: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO saves (slot, version, xp, level, payload, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
		   version = excluded.version,
		   xp = excluded.xp,
		   level = excluded.level,
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		slot, snapshot.Version, save.XP, save.Level, payload, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT OR IGNORE INTO quest_history
		 (slot, quest_id, title, difficulty, category, status, xp, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare history insert: %w", err)
	}
	defer stmt.Close()

	for _, q := range save.CompletedQuests {
		var completedAt int64
		if q.CompletedAt != nil {
			completedAt = q.CompletedAt.UnixMilli()
		}
		if _, err := stmt.Exec(slot, q.ID, q.Title, string(q.Difficulty), q.Category, string(q.Status), q.XP, completedAt); err != nil {
			return fmt.Errorf("storage: cannot archive quest %s: %w", q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit save: %w", err)
	}
	return nil
}

// LoadGame reads the save stored under slot. A missing slot yields an empty
// save. Warnings list fields that were repaired while decoding.
func (s *Store) LoadGame(slot string) (snapshot.Save, []string, error) {
	var payload []byte
	err := s.db.QueryRow("SELECT payload FROM saves WHERE slot = ?", slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return snapshot.Empty(), nil, nil
	}
	if err != nil {
		return snapshot.Empty(), nil, fmt.Errorf("storage: cannot load game: %w", err)
	}

	save, warnings, err := snapshot.Decode(payload)
	if err != nil {
		return snapshot.Empty(), nil, fmt.Errorf("storage: cannot decode save: %w", err)
	}
	return save, warnings, nil
}

// DeleteGame removes a slot and its archived history.
func (s *Store) DeleteGame(slot string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM saves WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete save: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM quest_history WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete history: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// Slots lists every stored slot, most recently updated first.
func (s *Store) Slots() ([]SlotInfo, error) {
	rows, err := s.db.Query(
		`SELECT slot, version, xp, level, updated_at
		 FROM saves
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	var slots []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var updatedAt int64
		if err := rows.Scan(&info.Slot, &info.Version, &info.XP, &info.Level, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = time.UnixMilli(updatedAt)
		slots = append(slots, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return slots, nil
}

// Stats contains aggregated quest statistics for a slot.
type Stats struct {
	Slot           string
	Completed      int
	Cancelled      int
	XPEarned       int64
	ByDifficulty   map[quest.Difficulty]int
	ByCategory     map[string]int
	LastCompletion time.Time
}

// Stats aggregates the archived history of slot.
func (s *Store) Stats(slot string) (*Stats, error) {
	stats := &Stats{
		Slot:         slot,
		ByDifficulty: make(map[quest.Difficulty]int),
		ByCategory:   make(map[string]int),
	}

	var last int64
	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN status = 'completed' THEN xp ELSE 0 END), 0),
		   COALESCE(MAX(CASE WHEN status = 'completed' THEN completed_at ELSE 0 END), 0)
		 FROM quest_history WHERE slot = ?`,
		slot,
	).Scan(&stats.Completed, &stats.Cancelled, &stats.XPEarned, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if last > 0 {
		stats.LastCompletion = time.UnixMilli(last)
	}

	rows, err := s.db.Query(
		`SELECT difficulty, category, COUNT(*)
		 FROM quest_history
		 WHERE slot = ? AND status = 'completed'
		 GROUP BY difficulty, category`,
		slot,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var difficulty, category string
		var count int
		if err := rows.Scan(&difficulty, &category, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats.ByDifficulty[quest.Difficulty(difficulty)] += count
		stats.ByCategory[category] += count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Slot binds a store to one save slot.
type Slot struct {
	store *Store
	name  string
}

// Slot returns an adapter that saves and loads the named slot.
func (s *Store) Slot(name string) *Slot {
	return &Slot{store: s, name: name}
}

// Name returns the slot name.
func (s *Slot) Name() string {
	return s.name
}

// Save implements engine.Persister.
func (s *Slot) Save(save snapshot.Save) error {
	return s.store.SaveGame(s.name, save)
}

// Load implements engine.Loader.
func (s *Slot) Load() (snapshot.Save, []string, error) {
	return s.store.LoadGame(s.name)
}

// Ensure Slot implements the engine persistence interfaces
var (
	_ engine.Persister = (*Slot)(nil)
	_ engine.Loader    = (*Slot)(nil)
)

// Package storage persists Pentix data. Scores and snapshot slots live in
// SQLite through the pure-Go modernc.org/sqlite driver, so no CGO is
// needed. Snapshots can also be plain JSON files compatible with
// saving.json.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vovakirdan/pentix/internal/core"
)

// migration is one schema step, run inside a transaction.
type migration func(tx *sql.Tx) error

// execSQL is a migration made of plain statements.
func execSQL(stmts string) migration {
	return func(tx *sql.Tx) error {
		_, err := tx.Exec(stmts)
		return err
	}
}

// migrations are applied in order; PRAGMA user_version records how many
// have run. Databases written by the arcade's earlier releases share the
// default path, carry user_version 0 and lack the player column.
var migrations = []migration{
	execSQL(`CREATE TABLE IF NOT EXISTS scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id    TEXT NOT NULL,
		player     TEXT NOT NULL DEFAULT '',
		score      INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);`),

	execSQL(`CREATE TABLE IF NOT EXISTS snapshots (
		game_id    TEXT NOT NULL,
		slot       TEXT NOT NULL,
		data       BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (game_id, slot)
	);`),

	addPlayerColumn,
}

// addPlayerColumn upgrades a scores table created without the player
// column. Fresh databases already have it.
func addPlayerColumn(tx *sql.Tx) error {
	has, err := hasColumn(tx, "scores", "player")
	if err != nil || has {
		return err
	}
	_, err = tx.Exec(`ALTER TABLE scores ADD COLUMN player TEXT NOT NULL DEFAULT ''`)
	return err
}

func hasColumn(tx *sql.Tx, table, column string) (bool, error) {
	var n int
	err := tx.QueryRow(
		"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, column,
	).Scan(&n)
	return n > 0, err
}

// Store is the SQLite database shared by scores and snapshot slots.
// It is safe for concurrent use by SSH sessions.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates every finished game of one variant.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open opens the database at dbPath, creating it and its directory when
// missing, and brings the schema up to date.
func Open(dbPath string) (*Store, error) {
	dbPath, err := core.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", dbPath, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if err := migrations[i](tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		// PRAGMA does not take bind parameters
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records a finished game and returns its row ID.
func (s *Store) SaveScore(gameID, player string, score int) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, player, score) VALUES (?, ?, ?)",
		gameID, player, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns the best limit scores of gameID, highest first. Ties
// keep the order they were set in. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, player, score, created_at FROM scores
		 WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		e := ScoreEntry{GameID: gameID}
		var created any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.CreatedAt = parseTime(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// parseTime accepts what the driver hands back for a DATETIME: a
// time.Time for plain columns, text for aggregates.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.DateTime, time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// HighScore returns the best score of gameID, or 0 when none is recorded.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow(
		"SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?", gameID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return best, nil
}

// ClearScores deletes every score of gameID and returns how many went.
func (s *Store) ClearScores(gameID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return res.RowsAffected()
}

// GetGameStats aggregates the scores of gameID. A variant never played
// has zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)
	return stats, nil
}

// SaveSnapshot stores data in the (gameID, slot) snapshot, replacing any
// previous one.
func (s *Store) SaveSnapshot(gameID, slot string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO snapshots (game_id, slot, data) VALUES (?, ?, ?)
		 ON CONFLICT(game_id, slot) DO UPDATE
		 SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		gameID, slot, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the (gameID, slot) snapshot or core.ErrNoSnapshot.
func (s *Store) LoadSnapshot(gameID, slot string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		"SELECT data FROM snapshots WHERE game_id = ? AND slot = ?", gameID, slot,
	).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, core.ErrNoSnapshot
	case err != nil:
		return nil, fmt.Errorf("storage: cannot load snapshot: %w", err)
	}
	return data, nil
}

var _ core.SnapshotStore = (*Store)(nil)

// Package sqlitestore persists games and settings in a local SQLite
// database, for installs that don't run Redis.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/wordrack/wordrack/game"
	"github.com/wordrack/wordrack/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	uid TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data BLOB NOT NULL
);
`

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. Use ":memory:"
// for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// modernc.org/sqlite does not support concurrent writers on one
	// connection pool; the engine is single-threaded anyway.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

var _ store.Store = (*Store)(nil)

func (s *Store) SaveGame(ctx context.Context, sg *game.SavedGame) error {
	data, err := json.Marshal(sg)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO games (uid, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(uid) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		sg.Uid, data)
	return err
}

func (s *Store) LoadGame(ctx context.Context, uid string) (*game.SavedGame, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM games WHERE uid = ?`, uid).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNoGame
	}
	if err != nil {
		return nil, err
	}

	var sg game.SavedGame
	if err := json.Unmarshal(data, &sg); err != nil {
		log.Warn().Err(err).Str("uid", uid).Msg("corrupt saved game; discarding")
		return nil, store.ErrNoGame
	}
	return &sg, nil
}

func (s *Store) DeleteGame(ctx context.Context, uid string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE uid = ?`, uid)
	return err
}

func (s *Store) SaveSettings(ctx context.Context, set *store.SavedSettings) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO settings (id, data) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`, data)
	return err
}

func (s *Store) LoadSettings(ctx context.Context) (*store.SavedSettings, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNoSettings
	}
	if err != nil {
		return nil, err
	}

	var set store.SavedSettings
	if err := json.Unmarshal(data, &set); err != nil {
		log.Warn().Err(err).Msg("corrupt saved settings; discarding")
		return nil, store.ErrNoSettings
	}
	return &set, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

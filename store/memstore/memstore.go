// Package memstore is an in-memory store, used by tests and as the
// default backend for the shell.
package memstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/wordrack/wordrack/game"
	"github.com/wordrack/wordrack/store"
)

type Store struct {
	mu       sync.RWMutex
	games    map[string][]byte
	settings []byte
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{games: make(map[string][]byte)}
}

var _ store.Store = (*Store)(nil)

// SaveGame marshals through JSON so the in-memory backend round-trips the
// same shapes the real backends do.
func (s *Store) SaveGame(ctx context.Context, sg *game.SavedGame) error {
	data, err := json.Marshal(sg)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[sg.Uid] = data
	return nil
}

func (s *Store) LoadGame(ctx context.Context, uid string) (*game.SavedGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.games[uid]
	if !ok {
		return nil, store.ErrNoGame
	}
	var sg game.SavedGame
	if err := json.Unmarshal(data, &sg); err != nil {
		return nil, store.ErrNoGame
	}
	return &sg, nil
}

func (s *Store) DeleteGame(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, uid)
	return nil
}

func (s *Store) SaveSettings(ctx context.Context, set *store.SavedSettings) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = data
	return nil
}

func (s *Store) LoadSettings(ctx context.Context) (*store.SavedSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, store.ErrNoSettings
	}
	var set store.SavedSettings
	if err := json.Unmarshal(s.settings, &set); err != nil {
		return nil, store.ErrNoSettings
	}
	return &set, nil
}

func (s *Store) Close() error {
	return nil
}

// Package redisstore is a Redis-backed implementation of the store
// interface. Games and settings are stored as JSON blobs.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/wordrack/wordrack/game"
	"github.com/wordrack/wordrack/store"
)

type Store struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis store, verifying the connection with a few
// retries so the shell can start alongside a Redis that is still coming up.
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	err = retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err()
		},
		retry.Attempts(5),
		retry.Delay(500*time.Millisecond),
	)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Store{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis store with an existing client (for testing).
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{client: client, cfg: cfg}
}

var _ store.Store = (*Store)(nil)

func (s *Store) SaveGame(ctx context.Context, sg *game.SavedGame) error {
	data, err := json.Marshal(sg)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, gameKey(sg.Uid), data, s.cfg.GameTTL).Err()
}

func (s *Store) LoadGame(ctx context.Context, uid string) (*game.SavedGame, error) {
	data, err := s.client.Get(ctx, gameKey(uid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNoGame
		}
		return nil, err
	}

	var sg game.SavedGame
	if err := json.Unmarshal(data, &sg); err != nil {
		// A corrupt blob is unrecoverable; treat it like a missing game
		// so the caller can start a fresh one.
		log.Warn().Err(err).Str("uid", uid).Msg("corrupt saved game; discarding")
		return nil, store.ErrNoGame
	}
	return &sg, nil
}

func (s *Store) DeleteGame(ctx context.Context, uid string) error {
	return s.client.Del(ctx, gameKey(uid)).Err()
}

func (s *Store) SaveSettings(ctx context.Context, set *store.SavedSettings) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, settingsKey(), data, 0).Err()
}

func (s *Store) LoadSettings(ctx context.Context) (*store.SavedSettings, error) {
	data, err := s.client.Get(ctx, settingsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNoSettings
		}
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
	return s.client.Close()
}

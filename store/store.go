// Package store persists game state and player settings to a key-value
// backend. The engine serializes the whole GameState after every turn
// controller transition; an absent or corrupt record means "no game in
// progress", never a crash.
package store

import (
	"context"
	"errors"

	"github.com/wordrack/wordrack/game"
)

var (
	// ErrNoGame is returned when no (readable) saved game exists.
	ErrNoGame = errors.New("no game in progress")
	// ErrNoSettings is returned when no settings record exists.
	ErrNoSettings = errors.New("no saved settings")
)

// Store is the persistence interface.
type Store interface {
	SaveGame(ctx context.Context, sg *game.SavedGame) error
	LoadGame(ctx context.Context, uid string) (*game.SavedGame, error)
	DeleteGame(ctx context.Context, uid string) error

	SaveSettings(ctx context.Context, s *SavedSettings) error
	LoadSettings(ctx context.Context) (*SavedSettings, error)

	Close() error
}

// SavedSettings is the persisted preferences record. Older records carry
// the boolean expert flag instead of a mode name; game.ModeFromLegacy
// upgrades them.
type SavedSettings struct {
	PlayerNames      [2]string `json:"playerNames"`
	Mode             string    `json:"mode,omitempty"`
	LegacyExpertMode *bool     `json:"expertMode,omitempty"`
	// CurrentGame is the uid of the game in progress, if any.
	CurrentGame string `json:"currentGame,omitempty"`
}

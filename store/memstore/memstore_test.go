package memstore

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/wordrack/wordrack/game"
	"github.com/wordrack/wordrack/lexicon"
	"github.com/wordrack/wordrack/store"
)

func snapshot(t *testing.T) *game.SavedGame {
	t.Helper()
	g, err := game.NewGameWithSeed(game.Settings{
		PlayerNames: [2]string{"Alice", "Bob"},
	}, lexicon.AcceptAll{}, 42)
	if err != nil {
		t.Fatal(err)
	}
	g.StartGame()
	return g.Snapshot()
}

func TestSaveAndLoadGame(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := New()
	sg := snapshot(t)
	is.NoErr(s.SaveGame(ctx, sg))

	loaded, err := s.LoadGame(ctx, sg.Uid)
	is.NoErr(err)
	is.Equal(loaded.Uid, sg.Uid)
	is.Equal(loaded.PlayerNames, sg.PlayerNames)

	// Loads are deep copies; mutating one does not leak into the store.
	loaded.Scores[0] = 999
	again, err := s.LoadGame(ctx, sg.Uid)
	is.NoErr(err)
	is.Equal(again.Scores[0], 0)
}

func TestLoadGameMissing(t *testing.T) {
	is := is.New(t)

	s := New()
	_, err := s.LoadGame(context.Background(), "nope")
	is.Equal(err, store.ErrNoGame)
}

func TestDeleteGame(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := New()
	sg := snapshot(t)
	is.NoErr(s.SaveGame(ctx, sg))
	is.NoErr(s.DeleteGame(ctx, sg.Uid))

	_, err := s.LoadGame(ctx, sg.Uid)
	is.Equal(err, store.ErrNoGame)
}

func TestSettings(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := New()
	_, err := s.LoadSettings(ctx)
	is.Equal(err, store.ErrNoSettings)

	set := &store.SavedSettings{PlayerNames: [2]string{"Alice", "Bob"}, Mode: "expert"}
	is.NoErr(s.SaveSettings(ctx, set))

	loaded, err := s.LoadSettings(ctx)
	is.NoErr(err)
	is.Equal(loaded, set)
}

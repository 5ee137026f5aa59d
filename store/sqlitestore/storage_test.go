package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordrack/wordrack/game"
	"github.com/wordrack/wordrack/lexicon"
	"github.com/wordrack/wordrack/store"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "wordrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func snapshot(t *testing.T) *game.SavedGame {
	t.Helper()
	g, err := game.NewGameWithSeed(game.Settings{
		PlayerNames: [2]string{"Alice", "Bob"},
	}, lexicon.AcceptAll{}, 42)
	require.NoError(t, err)
	g.StartGame()
	return g.Snapshot()
}

func TestSaveAndLoadGame(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	sg := snapshot(t)

	require.NoError(t, s.SaveGame(ctx, sg))

	loaded, err := s.LoadGame(ctx, sg.Uid)
	require.NoError(t, err)
	require.Equal(t, sg.Uid, loaded.Uid)

	restored, err := game.RestoreGame(loaded, lexicon.AcceptAll{}, game.Settings{})
	require.NoError(t, err)
	require.Equal(t, 100, restored.TotalTileCount())
}

func TestSaveGameUpserts(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	sg := snapshot(t)

	require.NoError(t, s.SaveGame(ctx, sg))
	sg.Scores[0] = 42
	require.NoError(t, s.SaveGame(ctx, sg))

	loaded, err := s.LoadGame(ctx, sg.Uid)
	require.NoError(t, err)
	require.Equal(t, 42, loaded.Scores[0])
}

func TestLoadGameMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.LoadGame(context.Background(), "nope")
	require.ErrorIs(t, err, store.ErrNoGame)
}

func TestDeleteGame(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	sg := snapshot(t)

	require.NoError(t, s.SaveGame(ctx, sg))
	require.NoError(t, s.DeleteGame(ctx, sg.Uid))

	_, err := s.LoadGame(ctx, sg.Uid)
	require.ErrorIs(t, err, store.ErrNoGame)
}

func TestCorruptGameTreatedAsMissing(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (uid, data) VALUES ('broken', '{not json')`)
	require.NoError(t, err)

	_, err = s.LoadGame(ctx, "broken")
	require.ErrorIs(t, err, store.ErrNoGame)
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.LoadSettings(ctx)
	require.ErrorIs(t, err, store.ErrNoSettings)

	set := &store.SavedSettings{PlayerNames: [2]string{"Alice", "Bob"}, Mode: "freeplay"}
	require.NoError(t, s.SaveSettings(ctx, set))

	set.CurrentGame = "abc"
	require.NoError(t, s.SaveSettings(ctx, set))

	loaded, err := s.LoadSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, set, loaded)
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wordrack.db")

	s, err := Open(path)
	require.NoError(t, err)
	sg := snapshot(t)
	require.NoError(t, s.SaveGame(ctx, sg))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	loaded, err := s.LoadGame(ctx, sg.Uid)
	require.NoError(t, err)
	require.Equal(t, sg.Uid, loaded.Uid)
}

package game

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/require"

	"github.com/wordrack/wordrack/board"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := newTestGame(t, ModeStandard)
	rigRack(t, g, 0, "CATXYZW")
	playLetters(t, g, board.Center, false, "CAT")
	_, _ = g.Submit()
	rigRack(t, g, 1, "OURABCD")
	playLetters(t, g, board.Position{Row: 8, Col: 7}, false, "OUR")
	_, _ = g.Submit()

	sg := g.Snapshot()
	data, err := json.Marshal(sg)
	require.NoError(t, err)

	var decoded SavedGame
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored, err := RestoreGame(&decoded, testLexicon(), Settings{})
	require.NoError(t, err)

	require.Equal(t, g.Uid(), restored.Uid())
	require.Equal(t, ModeStandard, restored.Settings().Mode)
	require.Equal(t, g.PointsFor(0), restored.PointsFor(0))
	require.Equal(t, g.PointsFor(1), restored.PointsFor(1))
	require.Equal(t, g.PlayerOnTurn(), restored.PlayerOnTurn())
	require.Equal(t, g.Turn(), restored.Turn())
	require.Equal(t, g.FirstMove(), restored.FirstMove())
	require.Equal(t, g.RackFor(0).String(), restored.RackFor(0).String())
	require.Equal(t, g.RackFor(1).String(), restored.RackFor(1).String())
	require.Equal(t, g.Board().String(), restored.Board().String())
	require.Equal(t, 100, restored.TotalTileCount())

	// The restored game is playable.
	rigRack(t, restored, restored.PlayerOnTurn(), "CATSXYZ")
	playLetters(t, restored, board.Position{Row: 7, Col: 10}, false, "S")
	msg, _ := restored.Submit()
	require.Equal(t, KindSuccess, msg.Kind)
}

func TestSnapshotMidPlacementRoundTrip(t *testing.T) {
	g := newTestGame(t, ModeStandard)
	rigRack(t, g, 0, "C?TXYZW")
	playLetters(t, g, board.Center, false, "C?AT")

	sg := g.Snapshot()
	data, err := json.Marshal(sg)
	require.NoError(t, err)
	var decoded SavedGame
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored, err := RestoreGame(&decoded, testLexicon(), Settings{})
	require.NoError(t, err)
	require.Len(t, restored.PlacedThisTurn(), 3)

	// The re-linked placed tiles are the board's tiles, so a recall
	// works and the blank's letter resets.
	msg := restored.Recall()
	require.NotEqual(t, KindError, msg.Kind)
	require.True(t, restored.Board().IsEmpty())
	require.Equal(t, 7, restored.RackFor(0).NumTiles())
}

func TestSnapshotChallengeWindowRoundTrip(t *testing.T) {
	g := newTestGame(t, ModeTournament)
	rigRack(t, g, 0, "CTAXYZW")
	playLetters(t, g, board.Center, false, "CTA")
	_, _ = g.Submit()
	require.True(t, g.ChallengeOpen())

	sg := g.Snapshot()
	data, err := json.Marshal(sg)
	require.NoError(t, err)
	var decoded SavedGame
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored, err := RestoreGame(&decoded, testLexicon(), Settings{})
	require.NoError(t, err)
	require.True(t, restored.ChallengeOpen())

	// The challenge still works across the save boundary.
	msg, ok := restored.Challenge()
	require.True(t, ok, msg.Text)
	require.True(t, restored.Board().IsEmpty())
	require.Equal(t, 0, restored.PointsFor(0))
	require.Equal(t, 7, restored.RackFor(0).NumTiles())
	require.Equal(t, 100, restored.TotalTileCount())
}

func TestRestoreLegacyExpertFlag(t *testing.T) {
	is := is.New(t)

	g := newTestGame(t, ModeExpert)
	sg := g.Snapshot()
	// An old record: boolean flag, no mode name.
	expert := true
	sg.Mode = ""
	sg.LegacyExpertMode = &expert

	restored, err := RestoreGame(sg, testLexicon(), Settings{})
	is.NoErr(err)
	is.Equal(restored.Settings().Mode, ModeExpert)

	sg.LegacyExpertMode = nil
	restored, err = RestoreGame(sg, testLexicon(), Settings{})
	is.NoErr(err)
	is.Equal(restored.Settings().Mode, ModeStandard)
}

func TestRestoreRejectsCorruptSnapshots(t *testing.T) {
	is := is.New(t)

	_, err := RestoreGame(nil, testLexicon(), Settings{})
	is.True(err != nil)

	g := newTestGame(t, ModeStandard)

	sg := g.Snapshot()
	sg.OnTurn = 5
	_, err = RestoreGame(sg, testLexicon(), Settings{})
	is.True(err != nil)

	sg = g.Snapshot()
	sg.GameOver = true // but Winner stays NoWinner
	_, err = RestoreGame(sg, testLexicon(), Settings{})
	is.True(err != nil)

	sg = g.Snapshot()
	sg.Winner = 1 // but GameOver stays false
	_, err = RestoreGame(sg, testLexicon(), Settings{})
	is.True(err != nil)

	// A missing tile breaks conservation.
	sg = g.Snapshot()
	sg.Bag = sg.Bag[1:]
	_, err = RestoreGame(sg, testLexicon(), Settings{})
	is.True(err != nil)

	// A winner index that is not a player.
	sg = g.Snapshot()
	sg.GameOver = true
	sg.Winner = 5
	_, err = RestoreGame(sg, testLexicon(), Settings{})
	is.True(err != nil)
}

func TestRestoreRejectsOffBoardPositions(t *testing.T) {
	is := is.New(t)

	g := newTestGame(t, ModeStandard)

	// A board tile outside the grid, with conservation intact.
	sg := g.Snapshot()
	sg.BoardTiles = append(sg.BoardTiles, SavedBoardTile{
		Pos: board.Position{Row: 99}, Tile: sg.Bag[0],
	})
	sg.Bag = sg.Bag[1:]
	_, err := RestoreGame(sg, testLexicon(), Settings{})
	is.True(err != nil)

	// A placement entry outside the grid.
	sg = g.Snapshot()
	sg.Placed = append(sg.Placed, PlacedTile{
		Pos: board.Position{Row: -1}, Tile: sg.Bag[0],
	})
	_, err = RestoreGame(sg, testLexicon(), Settings{})
	is.True(err != nil)

	// A placement entry pointing at an empty square.
	sg = g.Snapshot()
	sg.Placed = append(sg.Placed, PlacedTile{
		Pos: board.Position{}, Tile: sg.Bag[0],
	})
	_, err = RestoreGame(sg, testLexicon(), Settings{})
	is.True(err != nil)
}

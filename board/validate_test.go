package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestValidateEmptyPlacement(t *testing.T) {
	is := is.New(t)

	g := MakeStandardBoard()
	violations := g.ValidatePlacement(nil, true)
	is.Equal(violations, []error{ErrNoTilesPlaced})
}

func TestValidateFirstMoveThroughCenter(t *testing.T) {
	is := is.New(t)

	g := MakeStandardBoard()
	placed := placeWord(t, g, Center, false, "CAT", 1)
	is.Equal(len(g.ValidatePlacement(placed, true)), 0)
}

func TestValidateFirstMoveOffCenter(t *testing.T) {
	is := is.New(t)

	g := MakeStandardBoard()
	placed := placeWord(t, g, Position{Row: 0, Col: 0}, false, "CAT", 1)
	violations := g.ValidatePlacement(placed, true)
	is.Equal(violations, []error{ErrFirstMoveNotCentered})
}

func TestValidateDiagonal(t *testing.T) {
	is := is.New(t)

	g := MakeStandardBoard()
	placed := []Position{}
	for i, ch := range "CAT" {
		pos := Position{Row: 7 + i, Col: 7 + i}
		value := i + 1
		is.NoErr(g.PlaceTile(tile(i+1, ch, value), pos))
		placed = append(placed, pos)
	}
	violations := g.ValidatePlacement(placed, true)
	is.Equal(violations[0], ErrNotSingleLine)
}

func TestValidateGap(t *testing.T) {
	is := is.New(t)

	g := MakeStandardBoard()
	placed := []Position{{Row: 7, Col: 7}, {Row: 7, Col: 9}}
	is.NoErr(g.PlaceTile(tile(1, 'N', 1), placed[0]))
	is.NoErr(g.PlaceTile(tile(2, 'O', 1), placed[1]))
	violations := g.ValidatePlacement(placed, true)
	is.Equal(violations, []error{ErrGapInPlacement})
}

func TestValidateGapFilledByCommittedTile(t *testing.T) {
	is := is.New(t)

	g := MakeStandardBoard()
	placeWord(t, g, Center, false, "CAT", 1)
	g.CommitFresh(0)

	// CATS: hook an S after a committed CAT, plus a tile two to the
	// right with a hole between them.
	placed := []Position{{Row: 7, Col: 10}, {Row: 7, Col: 12}}
	is.NoErr(g.PlaceTile(tile(10, 'S', 1), placed[0]))
	is.NoErr(g.PlaceTile(tile(11, 'O', 1), placed[1]))
	violations := g.ValidatePlacement(placed, false)
	is.Equal(violations, []error{ErrGapInPlacement})

	// Filling the hole clears the violation.
	is.NoErr(g.PlaceTile(tile(12, 'L', 1), Position{Row: 7, Col: 11}))
	placed = append(placed, Position{Row: 7, Col: 11})
	is.Equal(len(g.ValidatePlacement(placed, false)), 0)
}

func TestValidateDisconnected(t *testing.T) {
	is := is.New(t)

	g := MakeStandardBoard()
	placeWord(t, g, Center, false, "CAT", 1)
	g.CommitFresh(0)

	placed := placeWord(t, g, Position{Row: 0, Col: 0}, false, "DOG", 10)
	violations := g.ValidatePlacement(placed, false)
	is.Equal(violations, []error{ErrDisconnectedPlacement})
}

func TestValidateCrossPlacement(t *testing.T) {
	is := is.New(t)

	g := MakeStandardBoard()
	placeWord(t, g, Center, false, "CAT", 1)
	g.CommitFresh(0)

	// A vertical word through the A of CAT: only the new tiles are in
	// the placement list.
	placed := []Position{{Row: 6, Col: 8}, {Row: 8, Col: 8}}
	is.NoErr(g.PlaceTile(tile(10, 'E', 1), placed[0]))
	is.NoErr(g.PlaceTile(tile(11, 'R', 1), placed[1]))
	is.Equal(len(g.ValidatePlacement(placed, false)), 0)
}

func TestValidateSingleTileTouchingCommitted(t *testing.T) {
	is := is.New(t)

	g := MakeStandardBoard()
	placeWord(t, g, Center, false, "CAT", 1)
	g.CommitFresh(0)

	pos := Position{Row: 7, Col: 10}
	is.NoErr(g.PlaceTile(tile(10, 'S', 1), pos))
	is.Equal(len(g.ValidatePlacement([]Position{pos}, false)), 0)
}

package board

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// A FormedWord is a contiguous run of at least two occupied squares,
// together with the word string its tiles spell in board order.
type FormedWord struct {
	Word     string
	Start    Position
	Vertical bool
	Cells    []Position
}

// FormedWords derives all words formed by a placement: the main word
// along the placement's own axis, anchored at the first placed tile, plus
// the perpendicular word through each placed tile. Words are deduplicated
// by (starting cell, word string) so a cross run shared by several placed
// tiles is only counted once. Single occupied squares are not words; an
// empty result means the placement must be rejected with ErrNoWordFormed.
func (g *GameBoard) FormedWords(placed []Position) []FormedWord {
	if len(placed) == 0 {
		return nil
	}
	// A single-tile placement ties toward horizontal; the perpendicular
	// pass below picks up the vertical run regardless.
	vertical := false
	for _, p := range placed[1:] {
		if p.Row != placed[0].Row {
			vertical = true
		}
	}

	words := []FormedWord{}
	if main, ok := g.wordAt(placed[0], vertical); ok {
		words = append(words, main)
	}
	for _, p := range placed {
		if cross, ok := g.wordAt(p, !vertical); ok {
			words = append(words, cross)
		}
	}
	return lo.UniqBy(words, func(w FormedWord) string {
		return fmt.Sprintf("%d,%d:%s", w.Start.Row, w.Start.Col, w.Word)
	})
}

// wordAt extends outward from the anchor in both directions along the
// given axis while squares are occupied, and returns the run in board
// order. Runs shorter than two squares are not words.
func (g *GameBoard) wordAt(anchor Position, vertical bool) (FormedWord, bool) {
	ri, ci := 0, 1
	if vertical {
		ri, ci = 1, 0
	}

	// Walk back to the top/left edge of the run.
	row, col := anchor.Row, anchor.Col
	for g.PosExists(row-ri, col-ci) && g.HasTile(row-ri, col-ci) {
		row, col = row-ri, col-ci
	}
	start := Position{Row: row, Col: col}

	cells := []Position{}
	var sb strings.Builder
	for g.PosExists(row, col) && g.HasTile(row, col) {
		cells = append(cells, Position{Row: row, Col: col})
		sb.WriteRune(g.GetSquare(row, col).tile.Letter)
		row, col = row+ri, col+ci
	}
	if len(cells) < 2 {
		// there are no 1-letter words
		return FormedWord{}, false
	}
	return FormedWord{
		Word:     sb.String(),
		Start:    start,
		Vertical: vertical,
		Cells:    cells,
	}, true
}

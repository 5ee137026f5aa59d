package board

import (
	"fmt"

	"github.com/wordrack/wordrack/tiles"
)

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	// NoBonus is a plain square.
	NoBonus BonusSquare = ' '
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
	// BonusCenter is the center square. It doubles the word like 2WS.
	BonusCenter BonusSquare = '*'
)

// WordMultiplier returns the word multiplier of this bonus, or 1.
func (b BonusSquare) WordMultiplier() int {
	switch b {
	case Bonus3WS:
		return 3
	case Bonus2WS, BonusCenter:
		return 2
	}
	return 1
}

// LetterMultiplier returns the letter multiplier of this bonus, or 1.
func (b BonusSquare) LetterMultiplier() int {
	switch b {
	case Bonus3LS:
		return 3
	case Bonus2LS:
		return 2
	}
	return 1
}

// A Square is a single square in a game board. It holds the bonus marking,
// at most one tile, a transient "newly placed this turn" flag, and a
// cosmetic owner marker set once the tile's word is confirmed.
type Square struct {
	tile  *tiles.Tile
	bonus BonusSquare
	fresh bool
	owner int // player index, or -1
}

func (s *Square) Tile() *tiles.Tile {
	return s.tile
}

func (s *Square) Bonus() BonusSquare {
	return s.bonus
}

func (s *Square) IsEmpty() bool {
	return s.tile == nil
}

// Fresh reports whether the tile on this square was placed this turn and
// is not yet committed.
func (s *Square) Fresh() bool {
	return s.fresh
}

func (s *Square) Owner() int {
	return s.owner
}

func (s *Square) String() string {
	return fmt.Sprintf("<(%v) (%s)>", s.tile, string(s.bonus))
}

// DisplayString shows the tile letter, or the bonus marking for an empty
// square.
func (s *Square) DisplayString() string {
	if s.tile == nil {
		if s.bonus == NoBonus {
			return "."
		}
		return string(s.bonus)
	}
	return string(s.tile.Letter)
}

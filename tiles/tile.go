// Package tiles handles the tile lifecycle outside the board: the letter
// distribution, the bag, and player racks.
package tiles

import (
	"errors"
	"fmt"
)

// A Tile is a single physical tile. The ID is unique within a game and is
// assigned when the bag is created. A blank tile has Blank set; its Letter
// is zero until it is assigned, and it always scores zero regardless of
// the assigned letter.
type Tile struct {
	ID     int  `json:"id"`
	Letter rune `json:"letter"`
	Value  int  `json:"value"`
	Blank  bool `json:"blank"`
}

var errNotABlank = errors.New("tile is not a blank")

// Score returns the point value of this tile. Blanks score zero.
func (t *Tile) Score() int {
	if t.Blank {
		return 0
	}
	return t.Value
}

// AssignBlank assigns a letter to a blank tile. Assigning a letter to a
// non-blank tile is an error; reassigning a blank is allowed, since the
// player may change their mind before submitting.
func (t *Tile) AssignBlank(letter rune) error {
	if !t.Blank {
		return errNotABlank
	}
	t.Letter = letter
	return nil
}

// ResetBlank clears the letter assignment of a blank. Blanks are fungible;
// this is called when a blank returns to the rack or the bag.
func (t *Tile) ResetBlank() {
	if t.Blank {
		t.Letter = 0
	}
}

func (t *Tile) String() string {
	if t.Blank {
		if t.Letter == 0 {
			return "?"
		}
		return fmt.Sprintf("%c?", t.Letter)
	}
	return string(t.Letter)
}

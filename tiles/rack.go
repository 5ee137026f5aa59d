package tiles

import (
	"fmt"
	"strings"
)

// RackTileLimit is the nominal rack capacity.
const RackTileLimit = 7

// Rack is an ordered collection of a player's tiles.
type Rack struct {
	tiles []*Tile
}

func NewRack() *Rack {
	return &Rack{tiles: make([]*Tile, 0, RackTileLimit)}
}

// Add appends tiles to the rack.
func (r *Rack) Add(ts ...*Tile) {
	r.tiles = append(r.tiles, ts...)
}

// Take removes the tile with the given ID from the rack and returns it.
func (r *Rack) Take(tileID int) (*Tile, error) {
	for i, t := range r.tiles {
		if t.ID == tileID {
			r.tiles = append(r.tiles[:i], r.tiles[i+1:]...)
			return t, nil
		}
	}
	return nil, fmt.Errorf("tile %d is not on the rack", tileID)
}

// Has returns whether the tile with the given ID is on the rack.
func (r *Rack) Has(tileID int) bool {
	for _, t := range r.tiles {
		if t.ID == tileID {
			return true
		}
	}
	return false
}

// Find returns the rack tile with the given ID, or nil.
func (r *Rack) Find(tileID int) *Tile {
	for _, t := range r.tiles {
		if t.ID == tileID {
			return t
		}
	}
	return nil
}

// TilesOn returns the rack's current tiles, in rack order. Callers must
// not mutate the returned slice.
func (r *Rack) TilesOn() []*Tile {
	return r.tiles
}

func (r *Rack) NumTiles() int {
	return len(r.tiles)
}

func (r *Rack) Empty() bool {
	return len(r.tiles) == 0
}

// ScoreOn returns the total face value of the tiles on this rack.
func (r *Rack) ScoreOn() int {
	score := 0
	for _, t := range r.tiles {
		score += t.Score()
	}
	return score
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	var sb strings.Builder
	for _, t := range r.tiles {
		sb.WriteString(t.String())
	}
	return sb.String()
}

func (r *Rack) Clear() {
	r.tiles = r.tiles[:0]
}

package tiles

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"
)

// A Bag is the bag o'tiles! It is an ordered list; the order is the draw
// order, and tiles are always drawn from the front.
type Bag struct {
	tiles      []*Tile
	ld         *LetterDistribution
	randSource *rand.Rand
}

// NewBag expands the letter distribution into individual tiles, each with
// a fresh unique ID, and shuffles them. The rand source must not be nil;
// the caller owns seeding so that games are reproducible in tests.
func NewBag(ld *LetterDistribution, randSource *rand.Rand) *Bag {
	ts := make([]*Tile, 0, ld.NumTiles())
	id := 0
	for _, spec := range ld.specs {
		for i := 0; i < spec.Count; i++ {
			ts = append(ts, &Tile{
				ID:     id,
				Letter: spec.Letter,
				Value:  spec.Value,
				Blank:  spec.Blank,
			})
			id++
		}
	}
	b := &Bag{tiles: ts, ld: ld, randSource: randSource}
	b.Shuffle()
	return b
}

// BagFromTiles rebuilds a bag with an explicit draw order, for state
// restoration. No shuffle happens here.
func BagFromTiles(ts []*Tile, ld *LetterDistribution, randSource *rand.Rand) *Bag {
	return &Bag{tiles: ts, ld: ld, randSource: randSource}
}

// Shuffle permutes the bag uniformly (Fisher-Yates, via rand.Shuffle).
func (b *Bag) Shuffle() {
	b.randSource.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw draws at most n tiles from the front of the bag. It can draw fewer
// if there are fewer tiles than n, and even draw no tiles at all :o
func (b *Bag) Draw(n int) []*Tile {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn := b.tiles[:n]
	b.tiles = b.tiles[n:]
	return drawn
}

// Exchange swaps the given tiles for an equal number of replacements. It
// is only valid when the bag holds at least as many tiles as are being
// exchanged. The returned tiles go back in the bag (blanks reset; they
// are fungible) and the bag is reshuffled.
func (b *Bag) Exchange(chosen []*Tile) ([]*Tile, error) {
	if len(chosen) > len(b.tiles) {
		return nil, fmt.Errorf(
			"cannot exchange %d tiles, the bag only has %d", len(chosen), len(b.tiles))
	}
	replacements := b.Draw(len(chosen))
	b.PutBack(chosen)
	b.Shuffle()
	log.Debug().Int("exchanged", len(chosen)).Int("remaining", len(b.tiles)).
		Msg("bag-exchange")
	return replacements, nil
}

// PutBack returns tiles to the bag. Blank assignments are cleared.
func (b *Bag) PutBack(ts []*Tile) {
	for _, t := range ts {
		t.ResetBlank()
	}
	b.tiles = append(b.tiles, ts...)
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Peek returns the bag contents in draw order. Callers must not mutate it.
func (b *Bag) Peek() []*Tile {
	return b.tiles
}

func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.ld
}

package tiles

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestBag(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	bag := NewBag(ld, rand.New(rand.NewSource(42)))
	is.Equal(bag.TilesRemaining(), 100)

	counts := map[rune]int{}
	blanks := 0
	for _, tile := range bag.Draw(100) {
		if tile.Blank {
			blanks++
		} else {
			counts[tile.Letter]++
		}
	}
	is.Equal(bag.TilesRemaining(), 0)
	is.Equal(blanks, 2)
	is.Equal(counts['E'], 12)
	is.Equal(counts['A'], 9)
	is.Equal(counts['Q'], 1)
	is.Equal(counts['Z'], 1)
}

func TestBagUniqueIDs(t *testing.T) {
	is := is.New(t)

	bag := NewBag(EnglishLetterDistribution(), rand.New(rand.NewSource(42)))
	seen := map[int]bool{}
	for _, tile := range bag.Peek() {
		is.True(!seen[tile.ID])
		seen[tile.ID] = true
	}
}

func TestDrawAtMost(t *testing.T) {
	is := is.New(t)

	bag := NewBag(EnglishLetterDistribution(), rand.New(rand.NewSource(1)))
	bag.Draw(98)
	drawn := bag.Draw(7)
	is.Equal(len(drawn), 2)
	is.Equal(bag.TilesRemaining(), 0)
	is.Equal(len(bag.Draw(7)), 0)
}

func TestSeededDrawIsDeterministic(t *testing.T) {
	is := is.New(t)

	a := NewBag(EnglishLetterDistribution(), rand.New(rand.NewSource(7)))
	b := NewBag(EnglishLetterDistribution(), rand.New(rand.NewSource(7)))
	for i := 0; i < 100; i++ {
		is.Equal(a.Draw(1)[0].Letter, b.Draw(1)[0].Letter)
	}
}

func TestExchange(t *testing.T) {
	is := is.New(t)

	bag := NewBag(EnglishLetterDistribution(), rand.New(rand.NewSource(3)))
	hand := bag.Draw(7)
	repl, err := bag.Exchange(hand[:3])
	is.NoErr(err)
	is.Equal(len(repl), 3)
	// Three went out, three came back.
	is.Equal(bag.TilesRemaining(), 93)
}

func TestExchangeNotEnoughTiles(t *testing.T) {
	is := is.New(t)

	bag := NewBag(EnglishLetterDistribution(), rand.New(rand.NewSource(3)))
	hand := bag.Draw(7)
	bag.Draw(91) // two tiles left
	_, err := bag.Exchange(hand[:3])
	is.True(err != nil)
	is.Equal(bag.TilesRemaining(), 2)
}

func TestPutBackResetsBlanks(t *testing.T) {
	is := is.New(t)

	bag := NewBag(EnglishLetterDistribution(), rand.New(rand.NewSource(3)))
	var blank *Tile
	for _, tile := range bag.Draw(100) {
		if tile.Blank {
			blank = tile
			break
		}
	}
	is.True(blank != nil)
	is.NoErr(blank.AssignBlank('Q'))
	bag.PutBack([]*Tile{blank})
	is.Equal(blank.Letter, rune(0))
}

func TestScanLetterDistribution(t *testing.T) {
	is := is.New(t)

	csv := "A,2,1\nB,1,3\n,1,0\n"
	ld, err := ScanLetterDistribution(strings.NewReader(csv))
	is.NoErr(err)
	is.Equal(ld.NumTiles(), 4)
	is.Equal(ld.Score('A'), 1)
	is.Equal(ld.Score('B'), 3)

	bag := NewBag(ld, rand.New(rand.NewSource(1)))
	blanks := 0
	for _, tile := range bag.Draw(4) {
		if tile.Blank {
			blanks++
		}
	}
	is.Equal(blanks, 1)
}

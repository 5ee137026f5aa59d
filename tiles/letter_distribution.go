package tiles

import (
	"encoding/csv"
	"io"
	"strconv"
)

// TileSpec is one record of a letter distribution: a letter, its point
// value, and how many tiles of it exist in the bag.
type TileSpec struct {
	Letter rune
	Value  int
	Count  int
	Blank  bool
}

// LetterDistribution encodes the full tile population for a game. The
// records are ordered; the sum of counts is the fixed bag size.
type LetterDistribution struct {
	Name  string
	specs []TileSpec
}

// NumTiles returns the total number of tiles this distribution expands to.
func (ld *LetterDistribution) NumTiles() int {
	n := 0
	for _, s := range ld.specs {
		n += s.Count
	}
	return n
}

func (ld *LetterDistribution) Specs() []TileSpec {
	return ld.specs
}

// Score gives the point value for a letter in this distribution, or 0 if
// the letter is not part of it.
func (ld *LetterDistribution) Score(letter rune) int {
	for _, s := range ld.specs {
		if s.Letter == letter {
			return s.Value
		}
	}
	return 0
}

// EnglishLetterDistribution returns the standard 100-tile English
// distribution, blanks included.
func EnglishLetterDistribution() *LetterDistribution {
	return &LetterDistribution{
		Name: "english",
		specs: []TileSpec{
			{'A', 1, 9, false}, {'B', 3, 2, false}, {'C', 3, 2, false},
			{'D', 2, 4, false}, {'E', 1, 12, false}, {'F', 4, 2, false},
			{'G', 2, 3, false}, {'H', 4, 2, false}, {'I', 1, 9, false},
			{'J', 8, 1, false}, {'K', 5, 1, false}, {'L', 1, 4, false},
			{'M', 3, 2, false}, {'N', 1, 6, false}, {'O', 1, 8, false},
			{'P', 3, 2, false}, {'Q', 10, 1, false}, {'R', 1, 6, false},
			{'S', 1, 4, false}, {'T', 1, 6, false}, {'U', 1, 4, false},
			{'V', 4, 2, false}, {'W', 4, 2, false}, {'X', 8, 1, false},
			{'Y', 4, 2, false}, {'Z', 10, 1, false}, {0, 0, 2, true},
		},
	}
}

// ScanLetterDistribution reads a distribution from a CSV stream with
// records of the form letter,quantity,value. A record with an empty
// letter field is the blank.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	specs := []TileSpec{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		spec := TileSpec{Value: p, Count: n}
		if record[0] == "" {
			spec.Blank = true
		} else {
			spec.Letter = []rune(record[0])[0]
		}
		specs = append(specs, spec)
	}
	return &LetterDistribution{Name: "custom", specs: specs}, nil
}

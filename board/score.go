package board

import (
	"github.com/samber/lo"

	"github.com/wordrack/wordrack/tiles"
)

// AllTilesBonus is awarded when a placement uses the whole rack.
const AllTilesBonus = 50

// A WordScore pairs a formed word with its computed point value.
type WordScore struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// ScoreWord computes the point value of one formed word. Bonus squares
// apply only to squares whose fresh flag is set; pre-existing tiles
// contribute their raw value with no multiplier even when they sit on a
// bonus square. Word multipliers compound. This is a pure function of the
// board contents.
func (g *GameBoard) ScoreWord(w FormedWord) int {
	sum := 0
	wordMult := 1
	for _, pos := range w.Cells {
		sq := g.GetSquare(pos.Row, pos.Col)
		letterScore := sq.tile.Score()
		if sq.fresh {
			letterScore *= sq.bonus.LetterMultiplier()
			wordMult *= sq.bonus.WordMultiplier()
		}
		sum += letterScore
	}
	return sum * wordMult
}

// ScorePlacement computes the total move score: the sum over all formed
// words, plus the all-tiles bonus if the placement used a full rack.
func (g *GameBoard) ScorePlacement(placed []Position, words []FormedWord) (int, []WordScore) {
	scores := lo.Map(words, func(w FormedWord, _ int) WordScore {
		return WordScore{Word: w.Word, Score: g.ScoreWord(w)}
	})
	total := lo.SumBy(scores, func(ws WordScore) int { return ws.Score })
	if len(placed) == tiles.RackTileLimit {
		total += AllTilesBonus
	}
	return total, scores
}

// RawScore sums the face values of the tiles in the formed words, with no
// bonus squares and no all-tiles bonus. Free-play mode scores this way.
func (g *GameBoard) RawScore(words []FormedWord) (int, []WordScore) {
	scores := lo.Map(words, func(w FormedWord, _ int) WordScore {
		sum := 0
		for _, pos := range w.Cells {
			sum += g.GetSquare(pos.Row, pos.Col).tile.Score()
		}
		return WordScore{Word: w.Word, Score: sum}
	})
	total := lo.SumBy(scores, func(ws WordScore) int { return ws.Score })
	return total, scores
}

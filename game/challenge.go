package game

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Challenge contests the last resolved move. Only tournament mode defers
// the dictionary check behind a challenge window, and only the opponent
// of the last mover may challenge, as their first action of the turn: any
// other action closes the window.
//
// A successful challenge takes the play off the board: the tiles return
// to the phony player's rack, the score is retracted, the bag is
// reshuffled so the challenged player learns nothing about upcoming
// tiles, and the challenger keeps their turn. A failed challenge costs
// the challenger their turn. Either way, the mover's replacement tiles
// are drawn once the window closes.
func (g *Game) Challenge() (Message, bool) {
	if g.playing == StateGameOver {
		return errorMsg("the game is over"), false
	}
	if g.settings.Mode != ModeTournament {
		return errorMsg("challenges are only allowed in tournament mode"), false
	}
	if !g.challengeOpen || g.lastMove == nil {
		return errorMsg("there is no move to challenge"), false
	}
	if !g.lex.Ready() {
		return errorMsg("no word list is loaded; the challenge cannot be adjudicated"), false
	}

	lm := g.lastMove
	var phonies []string
	for _, ws := range lm.Words {
		if !g.lex.HasWord(ws.Word) {
			phonies = append(phonies, ws.Word)
		}
	}
	playLegal := len(phonies) == 0

	if !playLegal {
		log.Debug().Strs("phonies", phonies).Msg("successful challenge")
		g.undoLastMove()
		g.challengeOpen = false
		return successMsg("challenge successful: %s comes off the board",
			strings.Join(phonies, ", ")), true
	}

	log.Debug().Msg("unsuccessful challenge")
	// The play stands. Close the window (drawing the mover's replacement
	// tiles) and the challenger loses their turn.
	g.resolveChallengeWindow()
	if g.playing == StatePlaying {
		g.nextTurn()
	}
	return errorMsg("challenge failed: the play is valid; you lose your turn"), false
}

// resolveChallengeWindow closes an open challenge window: the last
// mover's deferred replacement tiles are drawn and the end-of-game check
// runs. Called before every action that is not itself a challenge.
func (g *Game) resolveChallengeWindow() {
	if !g.challengeOpen {
		return
	}
	g.challengeOpen = false
	if g.lastMove != nil && g.lastMove.ReplacementsPending {
		g.drawReplacements(g.lastMove.Player)
		g.lastMove.ReplacementsPending = false
		g.checkEndOfGame(g.lastMove.Player)
	}
}

// undoLastMove retracts the last resolved move: tiles come off the board
// and back to the mover's rack (blanks reset), the score is rolled back,
// and the first-move flag is restored if the board emptied again. The
// move's replacement tiles were never drawn, so the bag needs only a
// reshuffle.
func (g *Game) undoLastMove() {
	lm := g.lastMove
	for _, pt := range lm.Placed {
		g.board.RemoveTile(pt.Pos)
		pt.Tile.ResetBlank()
		g.players[lm.Player].rack.Add(pt.Tile)
	}
	g.players[lm.Player].points -= lm.Score
	if g.board.IsEmpty() {
		g.firstMove = true
	}
	g.bag.Shuffle()
	g.lastMove = nil
}

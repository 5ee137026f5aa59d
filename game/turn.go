package game

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wordrack/wordrack/board"
	"github.com/wordrack/wordrack/lexicon"
	"github.com/wordrack/wordrack/tiles"
)

// PlaceTile places a tile from the current player's rack onto an empty
// square, or repositions a tile already placed this turn. blankAs assigns
// the letter when placing a blank; it is ignored for regular tiles.
// Dropping a tile on its current cell is a no-op.
func (g *Game) PlaceTile(tileID int, pos board.Position, blankAs rune) Message {
	if msg, ok := g.beginAction(); !ok {
		return msg
	}
	if !g.board.PosExists(pos.Row, pos.Col) {
		return errorMsg("%v is not on the board", pos)
	}

	// Repositioning a tile that is already part of this turn's placement.
	for _, pt := range g.placed {
		if pt.Tile.ID == tileID {
			return g.MovePlacedTile(pt.Pos, pos)
		}
	}

	t := g.players[g.onturn].rack.Find(tileID)
	if t == nil {
		return errorMsg("that tile is not on your rack")
	}
	if g.board.HasTile(pos.Row, pos.Col) {
		return errorMsg("%v already holds a tile", pos)
	}
	if t.Blank && blankAs != 0 {
		if err := t.AssignBlank(blankAs); err != nil {
			return errorMsg("%s", err.Error())
		}
	}
	if _, err := g.players[g.onturn].rack.Take(tileID); err != nil {
		return errorMsg("%s", err.Error())
	}
	if err := g.board.PlaceTile(t, pos); err != nil {
		g.players[g.onturn].rack.Add(t)
		return errorMsg("%s", err.Error())
	}
	g.placed = append(g.placed, PlacedTile{Pos: pos, Tile: t})
	return infoMsg("placed %s at %v", t, pos)
}

// MovePlacedTile moves one of this turn's placed tiles to another empty
// square. Moving a tile onto its own cell is a no-op.
func (g *Game) MovePlacedTile(from, to board.Position) Message {
	if msg, ok := g.beginAction(); !ok {
		return msg
	}
	if from == to {
		return infoMsg("")
	}
	if !g.board.PosExists(to.Row, to.Col) {
		return errorMsg("%v is not on the board", to)
	}
	idx := -1
	for i, pt := range g.placed {
		if pt.Pos == from {
			idx = i
		}
	}
	if idx == -1 {
		return errorMsg("no tile was placed at %v this turn", from)
	}
	if g.board.HasTile(to.Row, to.Col) {
		return errorMsg("%v already holds a tile", to)
	}
	t, err := g.board.PickupTile(from)
	if err != nil {
		return errorMsg("%s", err.Error())
	}
	if err := g.board.PlaceTile(t, to); err != nil {
		// The target was verified empty; re-place at the origin.
		_ = g.board.PlaceTile(t, from)
		return errorMsg("%s", err.Error())
	}
	g.placed[idx].Pos = to
	return infoMsg("moved %s to %v", t, to)
}

// Recall clears all of the current turn's placed tiles back to the rack,
// resetting any blank's assigned letter.
func (g *Game) Recall() Message {
	if msg, ok := g.beginAction(); !ok {
		return msg
	}
	g.recallPlaced()
	return infoMsg("tiles returned to your rack")
}

func (g *Game) recallPlaced() {
	for _, pt := range g.placed {
		t, err := g.board.PickupTile(pt.Pos)
		if err != nil {
			// The placed list and board disagree; this is a bug, not a
			// user error.
			log.Error().Err(err).Interface("pos", pt.Pos).Msg("recall desync")
			continue
		}
		t.ResetBlank()
		g.players[g.onturn].rack.Add(t)
	}
	g.placed = nil
}

// Pass recalls any placed tiles and advances to the next player without
// scoring.
func (g *Game) Pass() Message {
	if msg, ok := g.beginAction(); !ok {
		return msg
	}
	g.recallPlaced()
	passer := g.players[g.onturn].name
	g.nextTurn()
	return infoMsg("%s passed", passer)
}

// Submit resolves the current placement: structural validation, word
// extraction, the mode's dictionary policy, scoring, and state
// application. On success the active player flips and the turn number
// increments by one.
func (g *Game) Submit() (Message, []board.WordScore) {
	if msg, ok := g.beginAction(); !ok {
		return msg, nil
	}

	positions := make([]board.Position, len(g.placed))
	for i, pt := range g.placed {
		positions[i] = pt.Pos
	}

	if violations := g.board.ValidatePlacement(positions, g.firstMove); len(violations) > 0 {
		// Tiles remain placed; the player may adjust and resubmit.
		return errorMsg("%s", violations[0].Error()), nil
	}
	words := g.board.FormedWords(positions)
	if len(words) == 0 {
		return errorMsg("%s", board.ErrNoWordFormed.Error()), nil
	}

	if g.settings.Mode == ModeStandard || g.settings.Mode == ModeExpert {
		if !g.lex.Ready() {
			return errorMsg("no word list is loaded; load one or start a freeplay game"), nil
		}
		invalid := invalidWords(g.lex, words)
		if len(invalid) > 0 {
			if g.settings.Mode == ModeExpert {
				return g.forfeitTurn(invalid), nil
			}
			return errorMsg("%s is not a valid word", invalid[0]), nil
		}
	}

	var total int
	var scores []board.WordScore
	if g.settings.Mode == ModeFreePlay {
		total, scores = g.board.RawScore(words)
	} else {
		total, scores = g.board.ScorePlacement(positions, words)
	}

	mover := g.onturn
	g.players[mover].points += total
	g.board.CommitFresh(mover)
	g.lastMove = &LastMove{
		Player:              mover,
		Words:               scores,
		Placed:              g.placed,
		Score:               total,
		TurnNumber:          g.turnnum,
		ReplacementsPending: g.settings.Mode == ModeTournament,
	}
	g.placed = nil
	g.firstMove = false

	if g.settings.Mode == ModeTournament {
		// Replacement tiles and the end-of-game check wait until the
		// challenge window closes.
		g.challengeOpen = true
	} else {
		g.drawReplacements(mover)
		g.checkEndOfGame(mover)
	}
	if g.playing == StatePlaying {
		g.nextTurn()
	}

	log.Debug().Int("player", mover).Int("score", total).
		Interface("words", scores).Msg("move accepted")
	return successMsg("%s scored %d points", wordList(scores), total), scores
}

// forfeitTurn handles an expert-mode dictionary failure: the placement
// comes back to the rack, no score is awarded, and the turn passes.
func (g *Game) forfeitTurn(invalid []string) Message {
	g.recallPlaced()
	g.nextTurn()
	return errorMsg("%s is not a valid word; your turn is forfeited",
		strings.Join(invalid, ", "))
}

// beginAction runs the common preamble for every player action: it
// rejects actions on a finished game, closes an open challenge window
// (drawing any deferred replacement tiles), and re-checks for game over
// after the window resolves.
func (g *Game) beginAction() (Message, bool) {
	if g.playing == StateGameOver {
		return errorMsg("the game is over"), false
	}
	g.resolveChallengeWindow()
	if g.playing == StateGameOver {
		return errorMsg("the game is over"), false
	}
	if g.exchanging {
		return errorMsg("finish or cancel the exchange first"), false
	}
	return Message{}, true
}

// drawReplacements fills the player's rack back up to seven, capped by
// bag availability.
func (g *Game) drawReplacements(playerIdx int) {
	n := tiles.RackTileLimit - g.players[playerIdx].rack.NumTiles()
	if n > 0 {
		g.players[playerIdx].rack.Add(g.bag.Draw(n)...)
	}
}

func invalidWords(lex lexicon.Lexicon, words []board.FormedWord) []string {
	var illegal []string
	for _, w := range words {
		if !lex.HasWord(w.Word) {
			illegal = append(illegal, w.Word)
		}
	}
	return illegal
}

func wordList(scores []board.WordScore) string {
	names := make([]string, len(scores))
	for i, ws := range scores {
		names[i] = ws.Word
	}
	return strings.Join(names, ", ")
}

package game

import (
	"github.com/rs/zerolog/log"

	"github.com/wordrack/wordrack/tiles"
)

// BeginExchange enters exchange-selection mode. Exchanging is only
// permitted when no tiles are placed this turn.
func (g *Game) BeginExchange() Message {
	if msg, ok := g.beginAction(); !ok {
		return msg
	}
	if len(g.placed) > 0 {
		return errorMsg("recall your tiles before exchanging")
	}
	g.exchanging = true
	g.exchangeSel = map[int]bool{}
	return infoMsg("select the tiles to exchange")
}

// ToggleExchangeSelection toggles a rack tile in or out of the exchange
// selection.
func (g *Game) ToggleExchangeSelection(tileID int) Message {
	if g.playing == StateGameOver {
		return errorMsg("the game is over")
	}
	if !g.exchanging {
		return errorMsg("you are not exchanging")
	}
	if !g.players[g.onturn].rack.Has(tileID) {
		return errorMsg("that tile is not on your rack")
	}
	if g.exchangeSel[tileID] {
		delete(g.exchangeSel, tileID)
	} else {
		g.exchangeSel[tileID] = true
	}
	return infoMsg("%d tiles selected", len(g.exchangeSel))
}

// CancelExchange leaves exchange mode without consuming the turn.
func (g *Game) CancelExchange() Message {
	g.exchanging = false
	g.exchangeSel = nil
	return infoMsg("exchange cancelled")
}

// ConfirmExchange swaps the selected tiles for fresh ones from the bag
// and consumes the turn. It is rejected, with no state change, when the
// bag holds fewer tiles than are being exchanged.
func (g *Game) ConfirmExchange() Message {
	if g.playing == StateGameOver {
		return errorMsg("the game is over")
	}
	if !g.exchanging {
		return errorMsg("you are not exchanging")
	}
	if len(g.exchangeSel) == 0 {
		return errorMsg("no tiles are selected")
	}
	if g.bag.TilesRemaining() < len(g.exchangeSel) {
		return errorMsg("the bag only has %d tiles left", g.bag.TilesRemaining())
	}

	rack := g.players[g.onturn].rack
	chosen := make([]*tiles.Tile, 0, len(g.exchangeSel))
	for id := range g.exchangeSel {
		t, err := rack.Take(id)
		if err != nil {
			log.Error().Err(err).Int("tile", id).Msg("exchange selection desync")
			continue
		}
		chosen = append(chosen, t)
	}
	replacements, err := g.bag.Exchange(chosen)
	if err != nil {
		rack.Add(chosen...)
		return errorMsg("%s", err.Error())
	}
	rack.Add(replacements...)
	g.exchanging = false
	g.exchangeSel = nil
	g.nextTurn()
	return successMsg("exchanged %d tiles", len(chosen))
}

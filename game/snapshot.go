package game

import (
	"errors"

	"github.com/wordrack/wordrack/board"
	"github.com/wordrack/wordrack/lexicon"
	"github.com/wordrack/wordrack/tiles"
)

// SavedGame is the wholesale-serialized GameState, written after every
// turn controller transition. The Mode field carries the mode name;
// records persisted before the mode enum existed carry only the
// ExpertMode boolean, which ModeFromLegacy upgrades on load.
type SavedGame struct {
	Uid              string    `json:"uid"`
	Mode             string    `json:"mode,omitempty"`
	LegacyExpertMode *bool     `json:"expertMode,omitempty"`
	PlayerNames      [2]string `json:"playerNames"`
	Scores           [2]int    `json:"scores"`

	Racks      [2][]*tiles.Tile `json:"racks"`
	Bag        []*tiles.Tile    `json:"bag"`
	BoardTiles []SavedBoardTile `json:"boardTiles"`

	OnTurn        int          `json:"onTurn"`
	TurnNumber    int          `json:"turnNumber"`
	FirstMove     bool         `json:"firstMove"`
	GameOver      bool         `json:"gameOver"`
	Winner        int          `json:"winner"`
	Placed        []PlacedTile `json:"placed,omitempty"`
	LastMove      *LastMove    `json:"lastMove,omitempty"`
	ChallengeOpen bool         `json:"challengeOpen"`
}

// SavedBoardTile is one occupied board square.
type SavedBoardTile struct {
	Pos   board.Position `json:"pos"`
	Tile  *tiles.Tile    `json:"tile"`
	Fresh bool           `json:"fresh"`
	Owner int            `json:"owner"`
}

// Snapshot captures the full game state in a serializable form.
func (g *Game) Snapshot() *SavedGame {
	sg := &SavedGame{
		Uid:           g.uid,
		Mode:          g.settings.Mode.String(),
		PlayerNames:   [2]string{g.players[0].name, g.players[1].name},
		Scores:        [2]int{g.players[0].points, g.players[1].points},
		Bag:           append([]*tiles.Tile{}, g.bag.Peek()...),
		OnTurn:        g.onturn,
		TurnNumber:    g.turnnum,
		FirstMove:     g.firstMove,
		GameOver:      g.playing == StateGameOver,
		Winner:        g.winner,
		Placed:        append([]PlacedTile{}, g.placed...),
		LastMove:      g.lastMove,
		ChallengeOpen: g.challengeOpen,
	}
	for i := range g.players {
		sg.Racks[i] = append([]*tiles.Tile{}, g.players[i].rack.TilesOn()...)
	}
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			sq := g.board.GetSquare(row, col)
			if sq.Tile() != nil {
				sg.BoardTiles = append(sg.BoardTiles, SavedBoardTile{
					Pos:   board.Position{Row: row, Col: col},
					Tile:  sq.Tile(),
					Fresh: sq.Fresh(),
					Owner: sq.Owner(),
				})
			}
		}
	}
	return sg
}

// RestoreGame rebuilds a Game from a persisted snapshot. A structurally
// impossible snapshot yields an error; callers treat that as "no game in
// progress", never as a crash.
func RestoreGame(sg *SavedGame, lex lexicon.Lexicon, settings Settings) (*Game, error) {
	if sg == nil {
		return nil, errors.New("nil snapshot")
	}
	if (sg.Winner != NoWinner) != sg.GameOver {
		return nil, errors.New("snapshot winner and game-over flags disagree")
	}
	if sg.OnTurn != 0 && sg.OnTurn != 1 {
		return nil, errors.New("snapshot current player index out of range")
	}
	if sg.Winner != NoWinner && sg.Winner != 0 && sg.Winner != 1 {
		return nil, errors.New("snapshot winner index out of range")
	}

	settings.PlayerNames = sg.PlayerNames
	settings.Mode = ModeFromLegacy(sg.LegacyExpertMode, sg.Mode)
	if settings.LetterDistribution == nil {
		settings.LetterDistribution = tiles.EnglishLetterDistribution()
	}
	g, err := NewGame(settings, lex)
	if err != nil {
		return nil, err
	}
	g.uid = sg.Uid
	g.bag = tiles.BagFromTiles(sg.Bag, settings.LetterDistribution, g.randSource)
	for i := range g.players {
		g.players[i].points = sg.Scores[i]
		g.players[i].rack = tiles.NewRack()
		g.players[i].rack.Add(sg.Racks[i]...)
	}
	for _, bt := range sg.BoardTiles {
		if bt.Tile == nil || !g.board.PosExists(bt.Pos.Row, bt.Pos.Col) {
			return nil, errors.New("snapshot holds a tile off the board")
		}
		g.board.RestoreTile(bt.Tile, bt.Pos, bt.Fresh, bt.Owner)
	}
	g.onturn = sg.OnTurn
	g.turnnum = sg.TurnNumber
	g.firstMove = sg.FirstMove
	g.winner = sg.Winner
	if sg.GameOver {
		g.playing = StateGameOver
	}
	g.challengeOpen = sg.ChallengeOpen
	g.lastMove = sg.LastMove

	// Serialization breaks pointer identity between the board and the
	// placement lists; re-link them to the board's tiles.
	g.placed = make([]PlacedTile, len(sg.Placed))
	for i, pt := range sg.Placed {
		if !g.board.PosExists(pt.Pos.Row, pt.Pos.Col) {
			return nil, errors.New("snapshot placement off the board")
		}
		t := g.board.GetSquare(pt.Pos.Row, pt.Pos.Col).Tile()
		if t == nil {
			return nil, errors.New("snapshot placement does not match the board")
		}
		g.placed[i] = PlacedTile{Pos: pt.Pos, Tile: t}
	}
	if g.lastMove != nil {
		for i, pt := range g.lastMove.Placed {
			if !g.board.PosExists(pt.Pos.Row, pt.Pos.Col) {
				return nil, errors.New("snapshot placement off the board")
			}
			if t := g.board.GetSquare(pt.Pos.Row, pt.Pos.Col).Tile(); t != nil {
				g.lastMove.Placed[i] = PlacedTile{Pos: pt.Pos, Tile: t}
			}
		}
	}

	if g.TotalTileCount() != settings.LetterDistribution.NumTiles() {
		return nil, errors.New("snapshot does not conserve the tile count")
	}
	return g, nil
}

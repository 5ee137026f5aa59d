// Package game encapsulates the turn state machine for a two-player,
// same-device word placement game. The Game is the sole writer of the
// canonical state: the board contents, both racks, and the bag.
package game

import (
	"encoding/binary"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/wordrack/wordrack/board"
	"github.com/wordrack/wordrack/lexicon"
	"github.com/wordrack/wordrack/tiles"
)

// PlayState says whether a game is in progress.
type PlayState int

const (
	StatePlaying PlayState = iota
	StateGameOver
)

// NoWinner is the winner index while the game is in progress.
const NoWinner = -1

// Settings is everything the turn controller needs at construction time.
// Deep logic never reads ambient storage; preferences arrive here.
type Settings struct {
	PlayerNames        [2]string
	Mode               Mode
	LetterDistribution *tiles.LetterDistribution // nil means English
}

// A PlacedTile tracks one tile placed by the current player in the
// current, not-yet-submitted turn.
type PlacedTile struct {
	Pos  board.Position `json:"pos"`
	Tile *tiles.Tile    `json:"tile"`
}

// LastMove records the last resolved tile placement, for the tournament
// challenge window.
type LastMove struct {
	Player              int               `json:"player"`
	Words               []board.WordScore `json:"words"`
	Placed              []PlacedTile      `json:"placed"`
	Score               int               `json:"score"`
	TurnNumber          int               `json:"turnNumber"`
	ReplacementsPending bool              `json:"replacementsPending"`
}

// Game is the turn controller. All operations are synchronous state
// transitions; each either completes fully or is rejected with a
// user-facing message. It is never accessed concurrently.
type Game struct {
	settings Settings
	uid      string

	board *board.GameBoard
	bag   *tiles.Bag
	lex   lexicon.Lexicon

	players   playerStates
	onturn    int
	turnnum   int
	firstMove bool
	placed    []PlacedTile

	playing PlayState
	winner  int

	lastMove      *LastMove
	challengeOpen bool

	exchanging  bool
	exchangeSel map[int]bool

	randSeed   int64
	randSource *rand.Rand
}

func seededRandSource() (int64, *rand.Rand) {
	var b [8]byte
	frand.Read(b[:])
	seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	return seed, rand.New(rand.NewSource(seed))
}

// NewGame creates a game with a non-deterministic seed. Call StartGame to
// shuffle and deal.
func NewGame(settings Settings, lex lexicon.Lexicon) (*Game, error) {
	seed, src := seededRandSource()
	return newGame(settings, lex, seed, src)
}

// NewGameWithSeed creates a game with a reproducible bag order.
func NewGameWithSeed(settings Settings, lex lexicon.Lexicon, seed int64) (*Game, error) {
	return newGame(settings, lex, seed, rand.New(rand.NewSource(seed)))
}

func newGame(settings Settings, lex lexicon.Lexicon, seed int64, src *rand.Rand) (*Game, error) {
	if lex == nil {
		return nil, errors.New("a lexicon is required; use lexicon.AcceptAll for free play")
	}
	if settings.LetterDistribution == nil {
		settings.LetterDistribution = tiles.EnglishLetterDistribution()
	}
	g := &Game{
		settings:   settings,
		board:      board.MakeStandardBoard(),
		lex:        lex,
		winner:     NoWinner,
		randSeed:   seed,
		randSource: src,
	}
	g.players = playerStates{
		newPlayerState(settings.PlayerNames[0]),
		newPlayerState(settings.PlayerNames[1]),
	}
	return g, nil
}

// StartGame shuffles a fresh bag and deals out tiles to both players.
// Player 0 moves first; the turn number starts at 1.
func (g *Game) StartGame() {
	g.board.Clear()
	g.uid = uuid.NewString()
	log.Debug().Int64("seed", g.randSeed).Str("uid", g.uid).Msg("starting game")
	g.bag = tiles.NewBag(g.settings.LetterDistribution, g.randSource)

	g.players.resetScores()
	for i := range g.players {
		g.players[i].rack = tiles.NewRack()
		g.players[i].rack.Add(g.bag.Draw(tiles.RackTileLimit)...)
	}
	g.playing = StatePlaying
	g.winner = NoWinner
	g.onturn = 0
	g.turnnum = 1
	g.firstMove = true
	g.placed = nil
	g.lastMove = nil
	g.challengeOpen = false
	g.exchanging = false
	g.exchangeSel = nil
}

// checkEndOfGame ends the game the instant the player who just moved has
// an empty rack and the bag is empty. The winner is whoever has the
// higher score; ties resolve to player 0.
func (g *Game) checkEndOfGame(justMoved int) {
	if g.players[justMoved].rack.Empty() && g.bag.TilesRemaining() == 0 {
		g.playing = StateGameOver
		if g.players[1].points > g.players[0].points {
			g.winner = 1
		} else {
			g.winner = 0
		}
		log.Info().Int("winner", g.winner).Msg("game is over")
	}
}

func (g *Game) nextTurn() {
	g.onturn = otherPlayer(g.onturn)
	g.turnnum++
}

func otherPlayer(idx int) int {
	return (idx + 1) % 2
}

// Uid returns the game's unique identifier, set at StartGame.
func (g *Game) Uid() string {
	return g.uid
}

func (g *Game) Playing() PlayState {
	return g.playing
}

// Winner returns the winning player index, or NoWinner while the game is
// in progress.
func (g *Game) Winner() int {
	return g.winner
}

func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

func (g *Game) NameOnTurn() string {
	return g.players[g.onturn].name
}

func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) PointsFor(playerIdx int) int {
	return g.players[playerIdx].points
}

// RackFor returns the rack for the player with the passed-in index.
func (g *Game) RackFor(playerIdx int) *tiles.Rack {
	return g.players[playerIdx].rack
}

// Board returns the current board state. Readers must treat it as
// immutable between transitions.
func (g *Game) Board() *board.GameBoard {
	return g.board
}

func (g *Game) Bag() *tiles.Bag {
	return g.bag
}

func (g *Game) Settings() Settings {
	return g.settings
}

func (g *Game) Lexicon() lexicon.Lexicon {
	return g.lex
}

// PlacedThisTurn returns the in-progress placement list.
func (g *Game) PlacedThisTurn() []PlacedTile {
	return g.placed
}

func (g *Game) LastMove() *LastMove {
	return g.lastMove
}

// ChallengeOpen reports whether a challenge window is currently open.
func (g *Game) ChallengeOpen() bool {
	return g.challengeOpen
}

func (g *Game) FirstMove() bool {
	return g.firstMove
}

func (g *Game) RandSeed() int64 {
	return g.randSeed
}

// TotalTileCount sums the tiles across both racks, the bag, and the
// board. It must equal the letter distribution's size at all times.
func (g *Game) TotalTileCount() int {
	n := g.bag.TilesRemaining() + g.board.TilesOnBoard()
	for _, p := range g.players {
		n += p.rack.NumTiles()
	}
	return n
}

// Package board implements the 15x15 game board with its fixed bonus
// layout, plus the placement validator, word extractor, and scorer that
// operate on it.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wordrack/wordrack/tiles"
)

// Dim is the board dimension. The board is always square.
const Dim = 15

// A Position addresses a single cell, 0-indexed from the top left.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(p.Col), p.Row+1)
}

// ParsePosition parses coordinate notation like "H8" (column letter,
// then 1-indexed row).
func ParsePosition(s string) (Position, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Position{}, fmt.Errorf("bad coordinate %q", s)
	}
	col := int(s[0] - 'A')
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Position{}, fmt.Errorf("bad coordinate %q", s)
	}
	p := Position{Row: row - 1, Col: col}
	if !p.valid() {
		return Position{}, fmt.Errorf("coordinate %q is off the board", s)
	}
	return p, nil
}

func (p Position) valid() bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}

// Center is the starting square.
var Center = Position{Row: 7, Col: 7}

// StandardLayout is the fixed, symmetric bonus layout, encoded one rune
// per square. It is expanded once at board creation and never mutated.
var StandardLayout = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   *   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

// A GameBoard is the main board structure. Squares are kept in a single
// flat arena addressed by (row, col) index; snapshots are explicit copy
// operations at transition boundaries rather than per-read deep copies.
type GameBoard struct {
	squares  []Square
	tilesOn  int
	lastCopy *GameBoard
}

// MakeBoard creates a board from a layout description.
func MakeBoard(desc []string) *GameBoard {
	squares := make([]Square, 0, Dim*Dim)
	for _, row := range desc {
		for _, c := range row {
			squares = append(squares, Square{bonus: BonusSquare(c), owner: -1})
		}
	}
	return &GameBoard{squares: squares}
}

// MakeStandardBoard creates an empty board with the standard bonus layout.
func MakeStandardBoard() *GameBoard {
	return MakeBoard(StandardLayout)
}

func (g *GameBoard) idx(row, col int) int {
	return row*Dim + col
}

func (g *GameBoard) GetSquare(row, col int) *Square {
	return &g.squares[g.idx(row, col)]
}

func (g *GameBoard) GetBonus(row, col int) BonusSquare {
	return g.squares[g.idx(row, col)].bonus
}

func (g *GameBoard) HasTile(row, col int) bool {
	return g.squares[g.idx(row, col)].tile != nil
}

// PosExists returns whether the position is on the board.
func (g *GameBoard) PosExists(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

// IsEmpty returns whether the board has no tiles at all.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesOn == 0
}

// TilesOnBoard returns the number of tiles currently on the board,
// committed or fresh.
func (g *GameBoard) TilesOnBoard() int {
	return g.tilesOn
}

// PlaceTile tentatively places a tile, marking the square fresh. It is an
// error to place onto an occupied square.
func (g *GameBoard) PlaceTile(t *tiles.Tile, pos Position) error {
	sq := &g.squares[g.idx(pos.Row, pos.Col)]
	if sq.tile != nil {
		return fmt.Errorf("square %v already holds a tile", pos)
	}
	sq.tile = t
	sq.fresh = true
	g.tilesOn++
	return nil
}

// PickupTile removes a fresh tile from the board and returns it. Committed
// tiles cannot be picked up.
func (g *GameBoard) PickupTile(pos Position) (*tiles.Tile, error) {
	sq := &g.squares[g.idx(pos.Row, pos.Col)]
	if sq.tile == nil {
		return nil, fmt.Errorf("square %v is empty", pos)
	}
	if !sq.fresh {
		return nil, fmt.Errorf("the tile at %v is already committed", pos)
	}
	t := sq.tile
	sq.tile = nil
	sq.fresh = false
	g.tilesOn--
	return t, nil
}

// RestoreTile writes a tile and its flags directly, bypassing the
// placement rules. Only state restoration uses this.
func (g *GameBoard) RestoreTile(t *tiles.Tile, pos Position, fresh bool, owner int) {
	sq := &g.squares[g.idx(pos.Row, pos.Col)]
	if sq.tile == nil {
		g.tilesOn++
	}
	sq.tile = t
	sq.fresh = fresh
	sq.owner = owner
}

// RemoveTile takes a tile off the board unconditionally, committed or
// not. A successful challenge uses this to retract a resolved move.
func (g *GameBoard) RemoveTile(pos Position) *tiles.Tile {
	sq := &g.squares[g.idx(pos.Row, pos.Col)]
	if sq.tile == nil {
		return nil
	}
	t := sq.tile
	sq.tile = nil
	sq.fresh = false
	sq.owner = -1
	g.tilesOn--
	return t
}

// CommitFresh clears the fresh flag on every square and records the owner
// marker on the squares that were fresh. Called when a move is accepted.
func (g *GameBoard) CommitFresh(owner int) {
	for i := range g.squares {
		if g.squares[i].fresh {
			g.squares[i].fresh = false
			g.squares[i].owner = owner
		}
	}
}

// Clear clears the board.
func (g *GameBoard) Clear() {
	for i := range g.squares {
		g.squares[i].tile = nil
		g.squares[i].fresh = false
		g.squares[i].owner = -1
	}
	g.tilesOn = 0
}

// Copy returns a deep copy of this board. Tiles are shared.
func (g *GameBoard) Copy() *GameBoard {
	newg := &GameBoard{
		squares: make([]Square, len(g.squares)),
		tilesOn: g.tilesOn,
	}
	copy(newg.squares, g.squares)
	return newg
}

// CopyFrom copies the squares from b back into g.
func (g *GameBoard) CopyFrom(b *GameBoard) {
	copy(g.squares, b.squares)
	g.tilesOn = b.tilesOn
}

// SaveCopy snapshots the board so RestoreFromCopy can roll it back.
func (g *GameBoard) SaveCopy() {
	g.lastCopy = g.Copy()
}

func (g *GameBoard) RestoreFromCopy() {
	if g.lastCopy != nil {
		g.CopyFrom(g.lastCopy)
		g.lastCopy = nil
	}
}

// String returns the board in a printable grid, for logs and the shell.
func (g *GameBoard) String() string {
	var sb strings.Builder
	sb.WriteString("   " + strings.Join(strings.Split("ABCDEFGHIJKLMNO", ""), " ") + "\n")
	for row := 0; row < Dim; row++ {
		fmt.Fprintf(&sb, "%2d ", row+1)
		for col := 0; col < Dim; col++ {
			sb.WriteString(g.squares[g.idx(row, col)].DisplayString())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

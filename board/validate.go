package board

import "errors"

// The structural placement rules, in the order they are evaluated. The
// first violation in the returned list is the one surfaced to the player;
// the full list is computed so each rule is independently testable.
var (
	ErrNoTilesPlaced         = errors.New("you must place at least one tile")
	ErrNotSingleLine         = errors.New("tiles must be placed in a single row or column")
	ErrGapInPlacement        = errors.New("there can be no gaps in your play")
	ErrFirstMoveNotCentered  = errors.New("the first play must touch the center square")
	ErrDisconnectedPlacement = errors.New("your play must border a tile already on the board")
	ErrNoWordFormed          = errors.New("your play must form at least one word")
)

// ValidatePlacement checks a candidate set of newly placed positions
// against the structural rules. The tiles are assumed to be tentatively
// written into the board already (their squares are fresh).
func (g *GameBoard) ValidatePlacement(placed []Position, firstMove bool) []error {
	if len(placed) == 0 {
		return []error{ErrNoTilesPlaced}
	}

	violations := []error{}

	sameRow, sameCol := true, true
	for _, p := range placed[1:] {
		if p.Row != placed[0].Row {
			sameRow = false
		}
		if p.Col != placed[0].Col {
			sameCol = false
		}
	}
	if !sameRow && !sameCol {
		violations = append(violations, ErrNotSingleLine)
	} else if gapped(g, placed, sameRow) {
		// The gap rule needs an axis, so it is only checked for
		// single-line placements. Ties go to horizontal.
		violations = append(violations, ErrGapInPlacement)
	}

	if firstMove {
		touchesCenter := false
		for _, p := range placed {
			if p == Center {
				touchesCenter = true
			}
		}
		if !touchesCenter {
			violations = append(violations, ErrFirstMoveNotCentered)
		}
	} else {
		if !g.bordersCommittedTile(placed) {
			violations = append(violations, ErrDisconnectedPlacement)
		}
	}
	return violations
}

// gapped scans from the minimum to the maximum coordinate along the
// placement's axis; every intermediate square must hold a tile, whether
// newly placed or pre-existing.
func gapped(g *GameBoard, placed []Position, horizontal bool) bool {
	lo, hi := placed[0], placed[0]
	for _, p := range placed[1:] {
		if horizontal {
			if p.Col < lo.Col {
				lo = p
			}
			if p.Col > hi.Col {
				hi = p
			}
		} else {
			if p.Row < lo.Row {
				lo = p
			}
			if p.Row > hi.Row {
				hi = p
			}
		}
	}
	if horizontal {
		for col := lo.Col; col <= hi.Col; col++ {
			if !g.HasTile(lo.Row, col) {
				return true
			}
		}
	} else {
		for row := lo.Row; row <= hi.Row; row++ {
			if !g.HasTile(row, lo.Col) {
				return true
			}
		}
	}
	return false
}

// bordersCommittedTile reports whether any placed position is orthogonally
// adjacent to a pre-existing (not newly placed) tile.
func (g *GameBoard) bordersCommittedTile(placed []Position) bool {
	deltas := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, p := range placed {
		for _, d := range deltas {
			row, col := p.Row+d[0], p.Col+d[1]
			if !g.PosExists(row, col) {
				continue
			}
			sq := g.GetSquare(row, col)
			if sq.tile != nil && !sq.fresh {
				return true
			}
		}
	}
	return false
}

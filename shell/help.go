package shell

import "io"

const helpText = `Commands:
  new [mode]            start a new game (standard, expert, freeplay, tournament)
  names <p1> <p2>       set player names for the next game
  place <coord> <L>     place a rack tile, e.g. "place H8 C"; lowercase uses a blank
  move <from> <to>      reposition a tile placed this turn
  recall                return all tiles placed this turn to the rack
  submit                submit the placed tiles as a move
  pass                  pass the turn
  exchange [letters]    exchange tiles; with no letters, starts selection mode
  toggle <L>            toggle a tile in the exchange selection
  confirm / cancel      finish or abandon the exchange
  challenge             challenge the previous move (tournament mode)
  board / rack / score  show state
  exit                  quit
`

func usage(w io.Writer) {
	io.WriteString(w, helpText)
}

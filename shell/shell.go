// Package shell is an interactive two-player console frontend for the
// game engine. Both players share the terminal and the device.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/wordrack/wordrack/board"
	"github.com/wordrack/wordrack/game"
	"github.com/wordrack/wordrack/lexicon"
	"github.com/wordrack/wordrack/store"
	"github.com/wordrack/wordrack/tiles"
)

type ShellController struct {
	l *readline.Instance

	st   store.Store
	lex  lexicon.Lexicon
	dist *tiles.LetterDistribution

	settings *store.SavedSettings
	game     *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(st store.Store, lex lexicon.Lexicon,
	dist *tiles.LetterDistribution) *ShellController {

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mwordrack>\033[0m ",
		HistoryFile:     "/tmp/wordrack-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, st: st, lex: lex, dist: dist}
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.l.Stderr(), msg)
	io.WriteString(sc.l.Stderr(), "\n")
}

func (sc *ShellController) showResult(msg game.Message) {
	switch msg.Kind {
	case game.KindError:
		sc.showMessage("error: " + msg.Text)
	default:
		sc.showMessage(msg.Text)
	}
}

// Resume loads saved settings and, if a game was in progress, restores
// it. A missing or unreadable record just means starting fresh.
func (sc *ShellController) Resume(ctx context.Context) {
	set, err := sc.st.LoadSettings(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoSettings) {
			log.Error().Err(err).Msg("loading settings")
		}
		sc.settings = &store.SavedSettings{PlayerNames: [2]string{"Player 1", "Player 2"}}
		return
	}
	sc.settings = set
	if set.CurrentGame == "" {
		return
	}
	sg, err := sc.st.LoadGame(ctx, set.CurrentGame)
	if err != nil {
		if !errors.Is(err, store.ErrNoGame) {
			log.Error().Err(err).Msg("loading game")
		}
		return
	}
	g, err := game.RestoreGame(sg, sc.lex, game.Settings{
		PlayerNames:        sg.PlayerNames,
		LetterDistribution: sc.dist,
	})
	if err != nil {
		log.Error().Err(err).Str("uid", set.CurrentGame).Msg("restoring game")
		return
	}
	sc.game = g
	sc.showMessage(fmt.Sprintf("Resumed game between %s and %s (turn %d).",
		sg.PlayerNames[0], sg.PlayerNames[1], g.Turn()))
}

func (sc *ShellController) persist(ctx context.Context) {
	if sc.game == nil {
		return
	}
	sg := sc.game.Snapshot()
	if err := sc.st.SaveGame(ctx, sg); err != nil {
		log.Error().Err(err).Msg("saving game")
	}
	if sc.settings.CurrentGame != sg.Uid {
		sc.settings.CurrentGame = sg.Uid
		if err := sc.st.SaveSettings(ctx, sc.settings); err != nil {
			log.Error().Err(err).Msg("saving settings")
		}
	}
}

// pickFromRack resolves a letter argument to a rack tile. An uppercase
// letter takes the first matching regular tile; a lowercase letter takes
// a blank and assigns it that letter. Tiles whose ID is in skip are
// passed over, so repeated letters resolve to distinct tiles.
func pickFromRack(r *tiles.Rack, arg string, skip map[int]bool) (*tiles.Tile, rune, error) {
	runes := []rune(arg)
	if len(runes) != 1 {
		return nil, 0, fmt.Errorf("expected a single letter, got %q", arg)
	}
	ch := runes[0]
	wantBlank := ch >= 'a' && ch <= 'z'
	for _, t := range r.TilesOn() {
		if skip[t.ID] {
			continue
		}
		if wantBlank && t.Blank {
			return t, ch - 'a' + 'A', nil
		}
		if !wantBlank && !t.Blank && t.Letter == ch {
			return t, 0, nil
		}
	}
	if wantBlank {
		return nil, 0, errors.New("no blank tile on your rack")
	}
	return nil, 0, fmt.Errorf("no %c on your rack", ch)
}

func (sc *ShellController) gameRequired() bool {
	if sc.game == nil {
		sc.showMessage("no game in progress; start one with `new`")
		return false
	}
	return true
}

func (sc *ShellController) newGame(ctx context.Context, fields []string) {
	mode := game.ModeFromLegacy(sc.settings.LegacyExpertMode, sc.settings.Mode)
	if len(fields) > 0 {
		m, err := game.ParseMode(fields[0])
		if err != nil {
			sc.showMessage(err.Error())
			return
		}
		mode = m
	}
	g, err := game.NewGame(game.Settings{
		PlayerNames:        sc.settings.PlayerNames,
		Mode:               mode,
		LetterDistribution: sc.dist,
	}, sc.lex)
	if err != nil {
		sc.showMessage(err.Error())
		return
	}
	g.StartGame()
	sc.game = g
	sc.settings.Mode = mode.String()
	sc.settings.LegacyExpertMode = nil
	sc.settings.CurrentGame = g.Uid()
	if err := sc.st.SaveSettings(ctx, sc.settings); err != nil {
		log.Error().Err(err).Msg("saving settings")
	}
	sc.persist(ctx)
	sc.showMessage(fmt.Sprintf("New %s game. %s goes first.", mode, g.NameOnTurn()))
	sc.showBoard()
}

func (sc *ShellController) showBoard() {
	g := sc.game
	sc.showMessage(g.Board().String())
	for i := 0; i < 2; i++ {
		marker := "  "
		if g.Playing() == game.StatePlaying && g.PlayerOnTurn() == i {
			marker = "->"
		}
		sc.showMessage(fmt.Sprintf("%s %s: %d", marker,
			g.Settings().PlayerNames[i], g.PointsFor(i)))
	}
	if g.Playing() == game.StateGameOver {
		sc.showMessage(fmt.Sprintf("Game over. Winner: %s",
			g.Settings().PlayerNames[g.Winner()]))
	} else {
		sc.showMessage(fmt.Sprintf("%s's rack: %s  (bag: %d)",
			g.NameOnTurn(), g.RackFor(g.PlayerOnTurn()), g.Bag().TilesRemaining()))
	}
}

func (sc *ShellController) place(ctx context.Context, fields []string) {
	if len(fields) != 2 {
		sc.showMessage("usage: place <coord> <letter>   e.g. place H8 C, or place H8 c for a blank as C")
		return
	}
	pos, err := board.ParsePosition(fields[0])
	if err != nil {
		sc.showMessage(err.Error())
		return
	}
	t, blankAs, err := pickFromRack(sc.game.RackFor(sc.game.PlayerOnTurn()), fields[1], nil)
	if err != nil {
		sc.showMessage(err.Error())
		return
	}
	msg := sc.game.PlaceTile(t.ID, pos, blankAs)
	sc.showResult(msg)
	sc.persist(ctx)
}

func (sc *ShellController) movePlaced(ctx context.Context, fields []string) {
	if len(fields) != 2 {
		sc.showMessage("usage: move <from> <to>   e.g. move H8 H9")
		return
	}
	from, err := board.ParsePosition(fields[0])
	if err != nil {
		sc.showMessage(err.Error())
		return
	}
	to, err := board.ParsePosition(fields[1])
	if err != nil {
		sc.showMessage(err.Error())
		return
	}
	sc.showResult(sc.game.MovePlacedTile(from, to))
	sc.persist(ctx)
}

func (sc *ShellController) submit(ctx context.Context) {
	msg, words := sc.game.Submit()
	sc.showResult(msg)
	for _, ws := range words {
		sc.showMessage(fmt.Sprintf("  %s: %d", ws.Word, ws.Score))
	}
	sc.persist(ctx)
	sc.showBoard()
}

func (sc *ShellController) exchange(ctx context.Context, fields []string) {
	if msg := sc.game.BeginExchange(); msg.Kind == game.KindError {
		sc.showResult(msg)
		return
	}
	if len(fields) == 0 {
		sc.showMessage("exchange started; `toggle <letter>` then `confirm`, or `cancel`")
		return
	}
	// One-shot form: exchange A B C. Repeated letters take distinct
	// rack tiles.
	picked := map[int]bool{}
	for _, f := range fields {
		t, _, err := pickFromRack(sc.game.RackFor(sc.game.PlayerOnTurn()), f, picked)
		if err != nil {
			sc.showMessage(err.Error())
			sc.showResult(sc.game.CancelExchange())
			return
		}
		picked[t.ID] = true
		if msg := sc.game.ToggleExchangeSelection(t.ID); msg.Kind == game.KindError {
			sc.showResult(msg)
			sc.showResult(sc.game.CancelExchange())
			return
		}
	}
	sc.showResult(sc.game.ConfirmExchange())
	sc.persist(ctx)
	sc.showBoard()
}

func (sc *ShellController) toggle(fields []string) {
	if len(fields) != 1 {
		sc.showMessage("usage: toggle <letter>")
		return
	}
	t, _, err := pickFromRack(sc.game.RackFor(sc.game.PlayerOnTurn()), fields[0], nil)
	if err != nil {
		sc.showMessage(err.Error())
		return
	}
	sc.showResult(sc.game.ToggleExchangeSelection(t.ID))
}

func (sc *ShellController) Execute(ctx context.Context, sig chan os.Signal, line string) {
	fields, err := shellquote.Split(line)
	if err != nil || len(fields) == 0 {
		return
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "new":
		sc.newGame(ctx, args)
	case "names":
		if len(args) != 2 {
			sc.showMessage("usage: names <player1> <player2>")
			return
		}
		sc.settings.PlayerNames = [2]string{args[0], args[1]}
		if err := sc.st.SaveSettings(ctx, sc.settings); err != nil {
			log.Error().Err(err).Msg("saving settings")
		}
		sc.showMessage("names saved; they apply to the next game")
	case "place":
		if sc.gameRequired() {
			sc.place(ctx, args)
		}
	case "move":
		if sc.gameRequired() {
			sc.movePlaced(ctx, args)
		}
	case "recall":
		if sc.gameRequired() {
			sc.showResult(sc.game.Recall())
			sc.persist(ctx)
		}
	case "submit", "play":
		if sc.gameRequired() {
			sc.submit(ctx)
		}
	case "pass":
		if sc.gameRequired() {
			sc.showResult(sc.game.Pass())
			sc.persist(ctx)
			sc.showBoard()
		}
	case "exchange":
		if sc.gameRequired() {
			sc.exchange(ctx, args)
		}
	case "toggle":
		if sc.gameRequired() {
			sc.toggle(args)
		}
	case "confirm":
		if sc.gameRequired() {
			sc.showResult(sc.game.ConfirmExchange())
			sc.persist(ctx)
			sc.showBoard()
		}
	case "cancel":
		if sc.gameRequired() {
			sc.showResult(sc.game.CancelExchange())
			sc.persist(ctx)
		}
	case "challenge":
		if sc.gameRequired() {
			msg, _ := sc.game.Challenge()
			sc.showResult(msg)
			sc.persist(ctx)
			sc.showBoard()
		}
	case "board":
		if sc.gameRequired() {
			sc.showBoard()
		}
	case "rack":
		if sc.gameRequired() {
			g := sc.game
			sc.showMessage(g.RackFor(g.PlayerOnTurn()).String())
		}
	case "score":
		if sc.gameRequired() {
			g := sc.game
			for i := 0; i < 2; i++ {
				sc.showMessage(fmt.Sprintf("%s: %d", g.Settings().PlayerNames[i], g.PointsFor(i)))
			}
		}
	case "help":
		usage(sc.l.Stderr())
	case "bye", "exit", "quit":
		sig <- syscall.SIGINT
	default:
		sc.showMessage(fmt.Sprintf("unknown command %q; try `help`", cmd))
	}
}

func (sc *ShellController) Loop(ctx context.Context, sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sc.Execute(ctx, sig, line)
	}
	log.Debug().Msg("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	if err := sc.st.Close(); err != nil {
		log.Error().Err(err).Msg("closing store")
	}
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const interactiveHelp = `Commands:
  <square>        select a piece or move the selected piece (e.g. e2, then e4)
  promote q|r|b|n resolve a pending promotion
  fen             print the position string
  load <fen>      set up a position
  reset           set up the starting position
  board           redraw the board
  help            show this text
  quit            leave
`

// session is an interactive game driven by square names read from a reader.
type session struct {
	cfg  *config.Config
	game *game.Game
	out  io.Writer
}

// runInteractive reads commands from in until EOF or quit, writing boards
// to cfg.OutputFile.
func runInteractive(cfg *config.Config, in io.Reader) error {
	s := &session{cfg: cfg, game: game.New(cfg), out: cfg.OutputFile}
	if cfg.StartFEN != "" {
		if err := s.game.LoadFEN(cfg.StartFEN); err != nil {
			return err
		}
	}

	s.draw()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !s.handle(line) {
			return nil
		}
	}
	return scanner.Err()
}

// handle runs one command and reports whether the session continues.
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "quit", "exit", "q":
		return false
	case "help", "?":
		fmt.Fprint(s.out, interactiveHelp)
	case "board":
		s.draw()
	case "fen":
		fmt.Fprintln(s.out, s.game.FEN())
	case "reset":
		s.game.Reset()
		s.draw()
	case "load":
		fen := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		if err := s.game.LoadFEN(fen); err != nil {
			fmt.Fprintf(s.out, "cannot load position: %v\n", err)
			return true
		}
		s.draw()
	case "promote":
		s.promote(fields)
	default:
		s.click(cmd)
	}
	return true
}

func (s *session) promote(fields []string) {
	if len(fields) != 2 {
		fmt.Fprintln(s.out, "usage: promote q|r|b|n")
		return
	}
	piece, err := parsePromotion(fields[1])
	if err == nil {
		err = s.game.Promote(piece)
	}
	if err != nil {
		fmt.Fprintf(s.out, "cannot promote: %v\n", err)
		return
	}
	s.draw()
}

func (s *session) click(square string) {
	pos, err := chess.ParseAlgebraic(square)
	if err != nil {
		fmt.Fprintf(s.out, "unknown command or square %q; type help\n", square)
		return
	}
	moves := len(s.game.Moves())
	if !s.game.SetSelection(pos) {
		fmt.Fprintf(s.out, "illegal selection %s\n", square)
		return
	}
	if len(s.game.Moves()) != moves || s.game.State() == game.PieceSelected {
		s.draw()
	}
}

// draw writes the board with the selected piece's moves marked.
func (s *session) draw() {
	board := s.game.Board()
	fmt.Fprint(s.out, output.Diagram(board, s.game.Hints(), s.cfg.Output.Coordinates))
	fmt.Fprintln(s.out, output.Status(board))
	if sel, ok := s.game.Selection(); ok {
		fmt.Fprintf(s.out, "selected %s\n", sel)
	}
	if board.PromotionPending {
		fmt.Fprintln(s.out, "choose a promotion piece: promote q|r|b|n")
	}
}

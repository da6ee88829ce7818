// Package game implements the click-driven selection state machine that
// sits between a user interface and the rules engine.
package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// State is the selection state of a game.
type State int

const (
	NoSelection State = iota
	PieceSelected
)

func (s State) String() string {
	if s == PieceSelected {
		return "PieceSelected"
	}
	return "NoSelection"
}

// Game wraps a board with a selection. A Game is not safe for concurrent use.
type Game struct {
	board    *chess.Board
	cfg      *config.Config
	state    State
	selected chess.Position
	history  []engine.MoveResult
}

// New creates a game on the standard starting position. A nil cfg uses
// the defaults.
func New(cfg *config.Config) *Game {
	return NewFromBoard(engine.NewInitialBoard(), cfg)
}

// NewFromBoard creates a game that plays on board. The board's promoter is
// replaced by the one configured in cfg.Rules, if any.
func NewFromBoard(board *chess.Board, cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if promoter := cfg.Rules.Promoter(); promoter != nil {
		board.Promoter = promoter
	}
	return &Game{board: board, cfg: cfg}
}

// Board returns the board being played on.
func (g *Game) Board() *chess.Board {
	return g.board
}

// State returns the current selection state.
func (g *Game) State() State {
	return g.state
}

// Selection returns the selected square, if any.
func (g *Game) Selection() (chess.Position, bool) {
	return g.selected, g.state == PieceSelected
}

// Winner returns the colour of the only king left on the board, or
// NoColour while the game goes on.
func (g *Game) Winner() chess.Colour {
	return g.board.Winner()
}

// Moves returns the moves played through this game, oldest first.
func (g *Game) Moves() []engine.MoveResult {
	out := make([]engine.MoveResult, len(g.history))
	copy(out, g.history)
	return out
}

// Hints returns the destinations of the selected piece.
func (g *Game) Hints() []chess.Position {
	if g.state != PieceSelected {
		return nil
	}
	return engine.PossibleMoves(g.board, g.selected)
}

// SetSelection handles a click on pos and reports whether it was accepted.
//
// Once a winner is decided every click clears the selection and succeeds
// without touching the board. Without a selection, clicking a piece of the
// side to move selects it, clicking an empty square does nothing and
// clicking an opposing piece fails. With a selection, clicking another
// own piece moves the selection there, clicking one of the selected
// piece's destinations plays the move, and any other click cancels.
func (g *Game) SetSelection(pos chess.Position) bool {
	if g.board.Winner() != chess.NoColour {
		g.clear()
		return true
	}
	if !pos.Valid() {
		g.commentf("rejected selection %s: off the board\n", pos)
		return false
	}
	if g.board.PromotionPending {
		g.commentf("rejected selection %s: promotion pending on %s\n", pos, g.board.PromotionSquare)
		return false
	}

	colour := g.board.ColourAt(pos)
	if colour == g.board.ToMove {
		g.state = PieceSelected
		g.selected = pos
		return true
	}

	if g.state == NoSelection {
		if colour == chess.NoColour {
			return true
		}
		g.commentf("rejected selection %s: %s piece while %s to move\n", pos, colour, g.board.ToMove)
		return false
	}

	if !engine.CanMove(g.board, g.selected, pos) {
		g.commentf("cancelled selection %s: cannot reach %s\n", g.selected, pos)
		g.clear()
		return true
	}

	result, err := engine.ApplyMove(g.board, g.selected, pos)
	if err != nil {
		g.commentf("move %s%s failed: %v\n", g.selected, pos, err)
		return false
	}
	g.history = append(g.history, result)
	g.clear()
	if g.cfg.Verbosity >= 2 {
		fmt.Fprintf(g.cfg.LogFile, "played %s\n", result.Text())
	}
	return true
}

// Promote resolves a pending promotion and records the choice on the last
// move.
func (g *Game) Promote(pieceType chess.PieceType) error {
	if err := engine.Promote(g.board, pieceType); err != nil {
		return err
	}
	if n := len(g.history); n > 0 {
		g.history[n-1].Promotion = pieceType
		g.history[n-1].PromotionPending = false
	}
	return nil
}

// Reset sets up the starting position and forgets the selection and history.
func (g *Game) Reset() {
	g.board.Reset()
	g.clear()
	g.history = nil
}

// LoadFEN replaces the position. On error the game is unchanged.
func (g *Game) LoadFEN(fen string) error {
	if err := engine.LoadFEN(g.board, fen); err != nil {
		return err
	}
	g.clear()
	g.history = nil
	return nil
}

// FEN returns the current position string.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

func (g *Game) clear() {
	g.state = NoSelection
	g.selected = chess.Position{}
}

func (g *Game) commentf(format string, args ...interface{}) {
	if g.cfg.Verbosity >= 2 {
		fmt.Fprintf(g.cfg.LogFile, format, args...)
	}
}

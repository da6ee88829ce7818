// Package output renders boards as text diagrams, position strings or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Diagram marks for hinted squares.
const (
	emptySquare   = '.'
	hintedEmpty   = '*'
	hintedCapture = 'x'
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator or a line break as needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// Diagram draws the board top rank first. Empty squares are '.', hinted
// empty squares '*' and hinted occupied squares 'x'. With coordinates the
// ranks and files are labelled.
func Diagram(board *chess.Board, hints []chess.Position, coordinates bool) string {
	hinted := make(map[chess.Position]bool, len(hints))
	for _, h := range hints {
		hinted[h] = true
	}

	var sb strings.Builder
	border := "  +" + strings.Repeat("-", 2*chess.BoardSize+1) + "+\n"
	if coordinates {
		sb.WriteString(border)
	}
	for y := 0; y < chess.BoardSize; y++ {
		if coordinates {
			fmt.Fprintf(&sb, "%c |", chess.RankBase+chess.BoardSize-1-y)
		}
		for x := 0; x < chess.BoardSize; x++ {
			if coordinates || x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(squareMark(board, chess.Pos(x, y), hinted))
		}
		if coordinates {
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}
	if coordinates {
		sb.WriteString(border)
		sb.WriteString("   ")
		for x := 0; x < chess.BoardSize; x++ {
			fmt.Fprintf(&sb, " %c", chess.ColBase+x)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func squareMark(board *chess.Board, pos chess.Position, hinted map[chess.Position]bool) byte {
	piece, occupied := board.PieceAt(pos)
	switch {
	case hinted[pos] && occupied:
		return hintedCapture
	case hinted[pos]:
		return hintedEmpty
	case occupied:
		return piece.Letter()
	default:
		return emptySquare
	}
}

// Status summarises the side to move, clocks, rights and any winner.
func Status(board *chess.Board) string {
	var parts []string
	if winner := board.Winner(); winner != chess.NoColour {
		parts = append(parts, fmt.Sprintf("%s wins", winner))
	} else {
		parts = append(parts, fmt.Sprintf("%s to move", board.ToMove))
	}
	parts = append(parts,
		fmt.Sprintf("move %d", board.MoveNumber),
		fmt.Sprintf("halfmove clock %d", board.HalfmoveClock),
		"castling "+board.CastlingString(),
	)
	if board.EnPassant {
		parts = append(parts, "en passant "+board.EPSquare.Algebraic())
	}
	if board.PromotionPending {
		parts = append(parts, "promotion pending on "+board.PromotionSquare.Algebraic())
	}
	return strings.Join(parts, ", ")
}

// writeMoves writes the move list wrapped at maxLineLength.
func writeMoves(w io.Writer, moves []engine.MoveResult, maxLineLength int) {
	if len(moves) == 0 {
		return
	}
	ow := NewOutputWriter(w, maxLineLength)
	for _, m := range moves {
		ow.Write(m.Text())
	}
	ow.NewLine()
}

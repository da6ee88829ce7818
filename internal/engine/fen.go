// Package engine provides chess move generation, move execution and
// position notation on top of the chess package's board.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the notation of a freshly reset board. The full-move
// counter starts at 0 and counts completed Black moves.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"

// fenFields is the number of space-separated fields in a position string.
const fenFields = 6

// NewBoardFromFEN creates a board from a position string. Every field is
// validated; a malformed string yields a *errors.ParseError wrapping
// errors.ErrInvalidFormat.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    "fields",
			Input:    fen,
			Expected: fmt.Sprintf("%d space-separated fields", fenFields),
		}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}
	return board, nil
}

// LoadFEN replaces the whole state of board with the given position. The
// string is fully parsed before anything is replaced, so on error the
// board is unchanged. The board's promoter is kept.
func LoadFEN(board *chess.Board, fen string) error {
	parsed, err := NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	board.RestoreState(parsed.SaveState())
	return nil
}

func placementError(ranks, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFormat,
		Field:    "placement",
		Input:    ranks,
		Expected: expected,
	}
}

// parsePiecePositions parses the piece placement field of a position string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return placementError(positions, fmt.Sprintf("%d ranks separated by /", chess.BoardSize))
	}

	for y, rank := range ranks {
		x := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				if i > 0 && rank[i-1] >= '0' && rank[i-1] <= '9' {
					return placementError(rank, "no two digits in a row")
				}
				x += int(c - '0')
				if x > chess.BoardSize {
					return placementError(rank, "8 files per rank")
				}
				continue
			}
			piece := chess.PieceTypeFromLetter(c)
			if piece == chess.NoPiece {
				return placementError(string(c), "one of KQRBNPkqrbnp or a digit 1-8")
			}
			if x >= chess.BoardSize {
				return placementError(rank, "8 files per rank")
			}
			p := chess.Piece{Type: piece, Colour: chess.ColourFromLetter(c), Pos: chess.Pos(x, y)}
			if err := board.AddPiece(p); err != nil {
				return err
			}
			x++
		}
		if x != chess.BoardSize {
			return placementError(rank, "8 files per rank")
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    "side to move",
			Input:    side,
			Expected: "w or b",
		}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	rights, err := chess.ParseCastling(field)
	if err != nil {
		return err
	}
	board.Castling = rights
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseAlgebraic(field)
	if err != nil {
		return errors.Wrap(err, "en passant target")
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	h, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFormat, Field: "halfmove clock", Input: halfmove, Expected: "non-negative integer"}
	}
	f, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFormat, Field: "fullmove number", Input: fullmove, Expected: "non-negative integer"}
	}
	board.HalfmoveClock = uint(h)
	board.MoveNumber = uint(f)
	return nil
}

// BoardToFEN converts a board to a position string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.CastlingString())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder, top rank first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for y := 0; y < chess.BoardSize; y++ {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			piece, ok := board.PieceAt(chess.Pos(x, y))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.Algebraic())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.Reset()
	return board
}

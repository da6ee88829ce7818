package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveText is a move in coordinate notation, e.g. "e2e4" or "e7e8q".
type MoveText struct {
	From      chess.Position
	To        chess.Position
	Promotion chess.PieceType // NoPiece if no promotion letter was given
}

// ParseMove parses coordinate notation: two squares and an optional
// promotion letter (q, r, b or n in either case).
func ParseMove(text string) (MoveText, error) {
	if len(text) != 4 && len(text) != 5 {
		return MoveText{}, &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    "move",
			Input:    text,
			Expected: "from and to squares with optional promotion letter",
		}
	}
	from, err := chess.ParseAlgebraic(text[0:2])
	if err != nil {
		return MoveText{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := chess.ParseAlgebraic(text[2:4])
	if err != nil {
		return MoveText{}, errors.Wrapf(err, "move %q", text)
	}
	mt := MoveText{From: from, To: to}
	if len(text) == 5 {
		mt.Promotion = chess.PieceTypeFromLetter(text[4])
		if !mt.Promotion.Promotable() {
			return MoveText{}, &errors.ParseError{
				Err:      errors.ErrInvalidFormat,
				Field:    "promotion",
				Input:    text[4:],
				Expected: "one of q, r, b, n",
			}
		}
	}
	return mt, nil
}

// PlayMoveText parses and plays a coordinate move. A promotion letter
// overrides the board's promoter for this move only; without one, the
// board's promoter decides or the promotion is left pending.
func PlayMoveText(board *chess.Board, text string) (MoveResult, error) {
	return moveText(board, text, PlayMove)
}

// ApplyMoveText is PlayMoveText without the turn and destination checks.
func ApplyMoveText(board *chess.Board, text string) (MoveResult, error) {
	return moveText(board, text, ApplyMove)
}

func moveText(board *chess.Board, text string, move func(*chess.Board, chess.Position, chess.Position) (MoveResult, error)) (MoveResult, error) {
	mt, err := ParseMove(text)
	if err != nil {
		return MoveResult{}, err
	}
	if mt.Promotion != chess.NoPiece {
		piece, ok := board.PieceAt(mt.From)
		if !ok || !reachesLastRow(piece, mt.To) {
			return MoveResult{}, errors.Wrapf(errors.ErrInvalidPromotion, "move %q does not promote", text)
		}
		saved := board.Promoter
		board.Promoter = func() chess.PieceType { return mt.Promotion }
		defer func() { board.Promoter = saved }()
	}
	return move(board, mt.From, mt.To)
}

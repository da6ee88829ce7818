package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveResult describes what a successfully applied move did.
type MoveResult struct {
	Piece     chess.Piece // The mover as it stood before the move
	From      chess.Position
	To        chess.Position
	Captured  chess.Piece // Valid only when Capture is set
	Capture   bool
	EnPassant bool
	Castling  chess.Castling  // The right exercised, NoCastling otherwise
	Promotion chess.PieceType // The promoted-to piece, NoPiece otherwise

	// PromotionPending is set when the pawn reached its last row and no
	// promoter was registered; resolve with Promote.
	PromotionPending bool
}

// Text returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (r MoveResult) Text() string {
	var sb strings.Builder
	sb.WriteString(r.From.Algebraic())
	sb.WriteString(r.To.Algebraic())
	if r.Promotion != chess.NoPiece {
		sb.WriteByte(chess.PieceLetter(r.Promotion, chess.Black))
	}
	return sb.String()
}

// ApplyMove moves the piece on from to to and updates all derived state:
// captures, clocks, castling rights, the en passant target, castling rook
// relocation and promotion. It only refuses moves from an empty square,
// onto a piece of the mover's own colour, off the board, or while a
// promotion is pending; pattern and turn checks belong to PlayMove.
// On error the board is left untouched.
func ApplyMove(board *chess.Board, from, to chess.Position) (MoveResult, error) {
	if board.PromotionPending {
		return MoveResult{}, errors.Wrapf(errors.ErrPromotionPending, "pawn on %s", board.PromotionSquare)
	}
	if !from.Valid() || !to.Valid() || from == to {
		return MoveResult{}, errors.Wrapf(errors.ErrIllegalMove, "%s to %s", from, to)
	}
	piece, ok := board.PieceAt(from)
	if !ok {
		return MoveResult{}, errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", from)
	}
	target, occupied := board.PieceAt(to)
	if occupied && target.Colour == piece.Colour {
		return MoveResult{}, errors.Wrapf(errors.ErrIllegalMove, "%s is occupied by own %s", to, target.Type)
	}

	result := MoveResult{Piece: piece, From: from, To: to}

	// Work out compound moves before touching the board.
	var rookFrom, rookTo chess.Position
	var right chess.Castling
	castle := false
	if piece.Type == chess.King && from == chess.KingHome(piece.Colour) && to.Y == from.Y && abs(to.X-from.X) == 2 {
		rookFrom, rookTo, right = castlingRook(from, to, piece.Colour)
		castle = board.CanCastle(right) && isCastlingRook(board, rookFrom, piece.Colour) && board.IsEmpty(rookTo)
	}
	var victimPos chess.Position
	epCapture := false
	if !occupied {
		victimPos, epCapture = enPassantVictim(board, piece, to)
	}

	if occupied {
		board.RemovePiece(to)
		result.Captured, result.Capture = target, true
	}
	if epCapture {
		result.Captured, _ = board.RemovePiece(victimPos)
		result.Capture, result.EnPassant = true, true
	}

	if piece.Type == chess.Pawn || result.Capture {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if piece.Colour == chess.Black {
		board.MoveNumber++
	}

	updateCastlingRights(board, piece, from, result.Captured, result.Capture)

	board.Relocate(from, to)
	if castle {
		board.Relocate(rookFrom, rookTo)
		result.Castling = right
	}

	updateEnPassant(board, piece, from, to)

	if reachesLastRow(piece, to) {
		promote(board, &result)
	}

	board.ToMove = board.ToMove.Opposite()
	return result, nil
}

// promote asks the board's promoter for a piece, or leaves the promotion
// pending when there is none. A promoter answering with a piece a pawn may
// not become yields a queen.
func promote(board *chess.Board, result *MoveResult) {
	if board.Promoter == nil {
		board.PromotionPending = true
		board.PromotionSquare = result.To
		result.PromotionPending = true
		return
	}
	choice := board.Promoter()
	if !choice.Promotable() {
		choice = chess.Queen
	}
	board.Replace(result.To, choice)
	result.Promotion = choice
}

// Promote resolves a pending promotion by replacing the pawn with a piece
// of the chosen type.
func Promote(board *chess.Board, pieceType chess.PieceType) error {
	if !board.PromotionPending {
		return errors.ErrNoPromotionPending
	}
	if !pieceType.Promotable() {
		return errors.Wrapf(errors.ErrInvalidPromotion, "%s", pieceType)
	}
	board.Replace(board.PromotionSquare, pieceType)
	board.PromotionPending = false
	board.PromotionSquare = chess.Position{}
	return nil
}

// PlayMove applies a move only if it is the mover's turn and the
// destination is among the piece's possible moves.
func PlayMove(board *chess.Board, from, to chess.Position) (MoveResult, error) {
	if board.PromotionPending {
		return MoveResult{}, errors.Wrapf(errors.ErrPromotionPending, "pawn on %s", board.PromotionSquare)
	}
	piece, ok := board.PieceAt(from)
	if !ok {
		return MoveResult{}, errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", from)
	}
	if piece.Colour != board.ToMove {
		return MoveResult{}, errors.Wrapf(errors.ErrWrongTurn, "%s to move", board.ToMove)
	}
	if !CanMove(board, from, to) {
		return MoveResult{}, errors.Wrapf(errors.ErrIllegalMove, "%s cannot reach %s", piece, to)
	}
	return ApplyMove(board, from, to)
}

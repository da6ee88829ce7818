package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PossibleMoves returns the pseudo-legal destinations of the piece on pos,
// or nil if the square is empty. The result is freshly allocated on each
// call and does not consider whether the mover's king is left in check.
func PossibleMoves(board *chess.Board, pos chess.Position) []chess.Position {
	piece, ok := board.PieceAt(pos)
	if !ok {
		return nil
	}
	return PieceMoves(board, piece)
}

// PieceMoves returns the pseudo-legal destinations of piece on board.
func PieceMoves(board *chess.Board, piece chess.Piece) []chess.Position {
	switch piece.Type {
	case chess.King:
		return append(leap(board, piece, kingOffsets), castlingMoves(board, piece)...)
	case chess.Queen:
		return slide(board, piece, royalDirs, maxRay)
	case chess.Rook:
		return slide(board, piece, straightDirs, maxRay)
	case chess.Bishop:
		return slide(board, piece, diagonalDirs, maxRay)
	case chess.Knight:
		return leap(board, piece, knightOffsets)
	case chess.Pawn:
		return pawnMoves(board, piece)
	default:
		return nil
	}
}

// CanMove reports whether to is among the possible moves of the piece on from.
func CanMove(board *chess.Board, from, to chess.Position) bool {
	for _, pos := range PossibleMoves(board, from) {
		if pos == to {
			return true
		}
	}
	return false
}

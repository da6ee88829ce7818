package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingMoves returns the king destinations for castling moves still
// available. Attacked squares are not considered: the king may castle out
// of, through or into check.
func castlingMoves(board *chess.Board, king chess.Piece) []chess.Position {
	if king.Pos != chess.KingHome(king.Colour) {
		return nil
	}

	var moves []chess.Position
	for _, kingside := range []bool{true, false} {
		right := chess.CastlingRight(king.Colour, kingside)
		if !board.CanCastle(right) {
			continue
		}
		corner, _ := chess.RookCorner(right)
		if !isCastlingRook(board, corner, king.Colour) {
			continue
		}
		if !isStraightClear(board, king.Pos, corner) {
			continue
		}
		moves = append(moves, king.Pos.Move(2*sign(corner.X-king.Pos.X), 0))
	}
	return moves
}

// isCastlingRook reports whether a rook of the given colour stands on corner.
func isCastlingRook(board *chess.Board, corner chess.Position, colour chess.Colour) bool {
	rook, ok := board.PieceAt(corner)
	return ok && rook.Type == chess.Rook && rook.Colour == colour
}

// castlingRook works out the rook move that accompanies a king moving two
// files. The rook lands beside the king on the side it came from.
func castlingRook(kingFrom, kingTo chess.Position, colour chess.Colour) (rookFrom, rookTo chess.Position, right chess.Castling) {
	kingside := kingTo.X > kingFrom.X
	right = chess.CastlingRight(colour, kingside)
	rookFrom, _ = chess.RookCorner(right)
	rookTo = kingTo.Move(-sign(kingTo.X-kingFrom.X), 0)
	return rookFrom, rookTo, right
}

// rightForCorner returns the castling right tied to a rook standing on its
// original corner, or NoCastling for any other square.
func rightForCorner(colour chess.Colour, pos chess.Position) chess.Castling {
	for _, kingside := range []bool{true, false} {
		right := chess.CastlingRight(colour, kingside)
		if corner, ok := chess.RookCorner(right); ok && corner == pos {
			return right
		}
	}
	return chess.NoCastling
}

// updateCastlingRights removes castling rights when a king or rook moves,
// or when a rook is captured on its original corner.
func updateCastlingRights(board *chess.Board, mover chess.Piece, from chess.Position, captured chess.Piece, capture bool) {
	switch mover.Type {
	case chess.King:
		board.RevokeCastling(chess.CastlingRights(mover.Colour))
	case chess.Rook:
		board.RevokeCastling(rightForCorner(mover.Colour, from))
	}
	if capture && captured.Type == chess.Rook {
		board.RevokeCastling(rightForCorner(captured.Colour, captured.Pos))
	}
}

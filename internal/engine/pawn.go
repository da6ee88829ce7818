package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pushes, double pushes from the starting row,
// diagonal captures and en passant captures.
func pawnMoves(board *chess.Board, pawn chess.Piece) []chess.Position {
	var moves []chess.Position
	dir := chess.Forward(pawn.Colour)

	one := pawn.Pos.Move(0, dir)
	if one.Valid() && board.IsEmpty(one) {
		moves = append(moves, one)
		two := pawn.Pos.Move(0, 2*dir)
		if pawn.Pos.Y == chess.PawnRow(pawn.Colour) && board.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	for _, dx := range []int{-1, 1} {
		target := pawn.Pos.Move(dx, dir)
		if !target.Valid() {
			continue
		}
		if board.ColourAt(target) == pawn.Colour.Opposite() {
			moves = append(moves, target)
			continue
		}
		if _, ok := enPassantVictim(board, pawn, target); ok {
			moves = append(moves, target)
		}
	}
	return moves
}

// enPassantVictim returns the square of the pawn captured if pawn moves to
// target en passant. The victim sits beside the mover, one row behind target.
func enPassantVictim(board *chess.Board, pawn chess.Piece, target chess.Position) (chess.Position, bool) {
	if pawn.Type != chess.Pawn || !board.EnPassant || target != board.EPSquare {
		return chess.Position{}, false
	}
	if abs(target.X-pawn.Pos.X) != 1 || target.Y-pawn.Pos.Y != chess.Forward(pawn.Colour) {
		return chess.Position{}, false
	}
	if !board.IsEmpty(target) {
		return chess.Position{}, false
	}
	victimPos := chess.Pos(target.X, pawn.Pos.Y)
	victim, ok := board.PieceAt(victimPos)
	if !ok || victim.Type != chess.Pawn || victim.Colour != pawn.Colour.Opposite() {
		return chess.Position{}, false
	}
	return victimPos, true
}

// updateEnPassant records the skipped square after a double pawn advance
// that lands beside an opposing pawn, and clears the target otherwise.
func updateEnPassant(board *chess.Board, mover chess.Piece, from, to chess.Position) {
	board.EnPassant = false
	board.EPSquare = chess.Position{}

	if mover.Type != chess.Pawn || from.X != to.X || abs(to.Y-from.Y) != 2 {
		return
	}
	for _, dx := range []int{-1, 1} {
		adjacent, ok := board.PieceAt(to.Move(dx, 0))
		if ok && adjacent.Type == chess.Pawn && adjacent.Colour == mover.Colour.Opposite() {
			board.EnPassant = true
			board.EPSquare = chess.Pos(from.X, (from.Y+to.Y)/2)
			return
		}
	}
}

// reachesLastRow reports whether a pawn arriving on pos must promote.
func reachesLastRow(mover chess.Piece, pos chess.Position) bool {
	return mover.Type == chess.Pawn && pos.Y == chess.PromotionRow(mover.Colour)
}

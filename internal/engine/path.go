package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// offset is a (dx, dy) step on the board.
type offset struct {
	dx, dy int
}

// maxRay is the longest distance a sliding piece can travel.
const maxRay = chess.BoardSize - 1

var (
	straightDirs = []offset{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalDirs = []offset{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	royalDirs    = append(append([]offset{}, straightDirs...), diagonalDirs...)

	knightOffsets = []offset{
		{1, -2}, {2, -1}, {2, 1}, {1, 2},
		{-1, 2}, {-2, 1}, {-2, -1}, {-1, -2},
	}

	// Ordered row by row so king destinations read top-left to bottom-right.
	kingOffsets = []offset{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)

// slide casts rays from the piece along each direction. A ray stops before
// the first piece of the mover's colour and on the first opposing piece.
func slide(board *chess.Board, piece chess.Piece, dirs []offset, maxSteps int) []chess.Position {
	var moves []chess.Position
	for _, d := range dirs {
		pos := piece.Pos
		for step := 0; step < maxSteps; step++ {
			pos = pos.Move(d.dx, d.dy)
			if !pos.Valid() {
				break
			}
			occupant := board.ColourAt(pos)
			if occupant == piece.Colour {
				break
			}
			moves = append(moves, pos)
			if occupant != chess.NoColour {
				break
			}
		}
	}
	return moves
}

// leap returns the squares reached by single jumps that are on the board
// and not occupied by the mover's own colour.
func leap(board *chess.Board, piece chess.Piece, offsets []offset) []chess.Position {
	var moves []chess.Position
	for _, o := range offsets {
		pos := piece.Pos.Move(o.dx, o.dy)
		if pos.Valid() && board.ColourAt(pos) != piece.Colour {
			moves = append(moves, pos)
		}
	}
	return moves
}

// isStraightClear checks that every square strictly between from and to on
// the same row or column is empty.
func isStraightClear(board *chess.Board, from, to chess.Position) bool {
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)
	if dx != 0 && dy != 0 {
		return false
	}

	pos := from.Move(dx, dy)
	for pos != to {
		if !board.IsEmpty(pos) {
			return false
		}
		pos = pos.Move(dx, dy)
	}
	return true
}

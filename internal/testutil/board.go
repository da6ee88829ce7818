package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Squares converts algebraic square names to positions, failing the test
// on a bad name.
func Squares(t testing.TB, names ...string) []chess.Position {
	t.Helper()
	out := make([]chess.Position, 0, len(names))
	for _, name := range names {
		pos, err := chess.ParseAlgebraic(name)
		if err != nil {
			t.Fatalf("bad square %q: %v", name, err)
		}
		out = append(out, pos)
	}
	return out
}

// Square converts a single algebraic square name to a position.
func Square(t testing.TB, name string) chess.Position {
	t.Helper()
	return Squares(t, name)[0]
}

// positionLess orders positions row by row.
func positionLess(a, b chess.Position) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// SortedPositions is a cmp option that compares position slices as sets.
var SortedPositions = cmpopts.SortSlices(positionLess)

// AssertSameSquares compares two position slices ignoring order.
func AssertSameSquares(t testing.TB, got, want []chess.Position, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, SortedPositions, cmpopts.EquateEmpty()); diff != "" {
		report(t, formatMessage(msgAndArgs...), "squares mismatch (-want +got):\n"+diff)
	}
}

// AssertPieceAt fails unless a piece of the given type and colour stands on square.
func AssertPieceAt(t testing.TB, board *chess.Board, square string, pieceType chess.PieceType, colour chess.Colour) {
	t.Helper()
	got, ok := board.PieceAt(Square(t, square))
	if !ok {
		t.Errorf("%s is empty; want %s %s", square, colour, pieceType)
		return
	}
	if got.Type != pieceType || got.Colour != colour {
		t.Errorf("%s holds %s %s; want %s %s", square, got.Colour, got.Type, colour, pieceType)
	}
}

// AssertEmpty fails if any of the named squares is occupied.
func AssertEmpty(t testing.TB, board *chess.Board, squares ...string) {
	t.Helper()
	for _, sq := range squares {
		if p, ok := board.PieceAt(Square(t, sq)); ok {
			t.Errorf("%s holds %s; want empty", sq, p)
		}
	}
}

// AssertSamePieces compares the piece sets of two boards ignoring order.
func AssertSamePieces(t testing.TB, got, want *chess.Board) {
	t.Helper()
	less := func(a, b chess.Piece) bool { return positionLess(a.Pos, b.Pos) }
	if diff := cmp.Diff(want.Pieces(), got.Pieces(), cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("pieces mismatch (-want +got):\n%s", diff)
	}
}

package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Position is a square on the board. X is the file (0 = a) and Y is the
// row counted from the top, so row 0 is rank 8 and row 7 is rank 1.
// Positions compare by value and may be used as map keys.
type Position struct {
	X int
	Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.X >= 0 && p.Y >= 0 && p.X < BoardSize && p.Y < BoardSize
}

// Move returns p translated by (dx, dy). The result is not validated.
func (p Position) Move(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Algebraic returns the square name, e.g. "e4". Only meaningful for valid positions.
func (p Position) Algebraic() string {
	return string([]byte{byte(ColBase + p.X), byte(RankBase + BoardSize - 1 - p.Y)})
}

// String returns the algebraic name for valid squares and (x,y) otherwise.
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return p.Algebraic()
}

// ParseAlgebraic converts a square name such as "e4" into a Position.
func ParseAlgebraic(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    "square",
			Input:    s,
			Expected: "file a-h followed by rank 1-8",
		}
	}
	p := Position{
		X: int(s[0]) - ColBase,
		Y: BoardSize - 1 - (int(s[1]) - RankBase),
	}
	if !p.Valid() {
		return Position{}, &errors.ParseError{
			Err:   errors.ErrInvalidFormat,
			Field: "square",
			Input: s,
		}
	}
	return p, nil
}

// MustParseAlgebraic is like ParseAlgebraic but panics on bad input.
// It is intended for constants and tests.
func MustParseAlgebraic(s string) Position {
	p, err := ParseAlgebraic(s)
	if err != nil {
		panic(err)
	}
	return p
}

package chess

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Castling is a set of castling rights. Individual rights are single bits.
type Castling uint8

const (
	WhiteKingside Castling = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  Castling = 0
	AllCastling          = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingOrder is the fixed notation order K, Q, k, q.
var castlingOrder = []struct {
	right  Castling
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// Has reports whether every right in r is present.
func (c Castling) Has(r Castling) bool {
	return r != NoCastling && c&r == r
}

// Without returns c with the rights in r removed.
func (c Castling) Without(r Castling) Castling {
	return c &^ r
}

// String returns the rights as a subset of "KQkq", or "-" when empty.
func (c Castling) String() string {
	var sb strings.Builder
	for _, o := range castlingOrder {
		if c&o.right != 0 {
			sb.WriteByte(o.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ParseCastling parses "-" or a subset of "KQkq" written in that order.
func ParseCastling(s string) (Castling, error) {
	if s == "-" {
		return NoCastling, nil
	}
	var c Castling
	next := 0
	for i := 0; i < len(s); i++ {
		found := false
		for next < len(castlingOrder) {
			o := castlingOrder[next]
			next++
			if o.letter == s[i] {
				c |= o.right
				found = true
				break
			}
		}
		if !found {
			return NoCastling, &errors.ParseError{
				Err:      errors.ErrInvalidFormat,
				Field:    "castling",
				Input:    s,
				Expected: "subset of KQkq in order, or -",
			}
		}
	}
	if c == NoCastling {
		return NoCastling, &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    "castling",
			Expected: "subset of KQkq in order, or -",
		}
	}
	return c, nil
}

// CastlingRights returns both rights belonging to a colour.
func CastlingRights(colour Colour) Castling {
	switch colour {
	case White:
		return WhiteKingside | WhiteQueenside
	case Black:
		return BlackKingside | BlackQueenside
	default:
		return NoCastling
	}
}

// CastlingRight returns the single right for a colour and side.
func CastlingRight(colour Colour, kingside bool) Castling {
	switch {
	case colour == White && kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case colour == Black && kingside:
		return BlackKingside
	case colour == Black:
		return BlackQueenside
	default:
		return NoCastling
	}
}

// RookCorner returns the original square of the rook for a castling right.
func RookCorner(right Castling) (Position, bool) {
	switch right {
	case WhiteKingside:
		return Pos(BoardSize-1, HomeRow(White)), true
	case WhiteQueenside:
		return Pos(0, HomeRow(White)), true
	case BlackKingside:
		return Pos(BoardSize-1, HomeRow(Black)), true
	case BlackQueenside:
		return Pos(0, HomeRow(Black)), true
	default:
		return Position{}, false
	}
}

// KingHome returns the starting square of a colour's king.
func KingHome(colour Colour) Position {
	return Pos(4, HomeRow(colour))
}

// Package chess provides core chess types: colours, piece kinds, board
// coordinates and the Board aggregate that owns the pieces.
package chess

import "unicode"

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota // Empty square, or no winner yet
	Black
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour. NoColour has no opponent.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// Valid reports whether c is White or Black.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// PieceType represents a chess piece kind.
type PieceType int

const (
	NoPiece PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Valid reports whether p is one of the six piece kinds.
func (p PieceType) Valid() bool {
	return p >= Pawn && p <= King
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Promotable reports whether a pawn may be promoted to p.
func (p PieceType) Promotable() bool {
	return p == Queen || p == Rook || p == Bishop || p == Knight
}

// PieceTypeFromLetter converts a piece letter in either case to a piece type.
// It returns NoPiece for anything that is not one of KQRBNP.
func PieceTypeFromLetter(c byte) PieceType {
	switch unicode.ToUpper(rune(c)) {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'B':
		return Bishop
	case 'N':
		return Knight
	case 'P':
		return Pawn
	default:
		return NoPiece
	}
}

// PieceLetter returns the notation letter for a coloured piece:
// uppercase for White, lowercase for Black.
func PieceLetter(p PieceType, colour Colour) byte {
	letter := p.Letter()
	if colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ColourFromLetter returns the colour implied by a piece letter's case.
func ColourFromLetter(c byte) Colour {
	if unicode.IsLower(rune(c)) {
		return Black
	}
	return White
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	ColBase  = 'a'
	RankBase = '1'
)

// HomeRow returns the board row holding a colour's back rank.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the board row a colour's pawns start on.
func PawnRow(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// PromotionRow returns the row on which a colour's pawns promote.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// Forward returns the row delta of a pawn advance: -1 for White, +1 for Black.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

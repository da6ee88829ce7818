package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Piece is a coloured piece standing on a square. Pieces are values; the
// Board holds the authoritative copy of every piece it owns.
type Piece struct {
	Type   PieceType
	Colour Colour
	Pos    Position
}

// NewPiece creates a piece, rejecting a missing colour or type.
func NewPiece(pieceType PieceType, colour Colour, pos Position) (Piece, error) {
	p := Piece{Type: pieceType, Colour: colour, Pos: pos}
	if err := p.validate(); err != nil {
		return Piece{}, err
	}
	return p, nil
}

func (p Piece) validate() error {
	if !p.Colour.Valid() {
		return errors.Wrapf(errors.ErrInvalidConstruction, "%s has no colour", p.Type)
	}
	if !p.Type.Valid() {
		return errors.Wrapf(errors.ErrInvalidConstruction, "piece type %d", int(p.Type))
	}
	return nil
}

// Equal reports whether two pieces have the same colour and square.
// The piece type is deliberately not compared.
func (p Piece) Equal(other Piece) bool {
	return p.Colour == other.Colour && p.Pos == other.Pos
}

// Letter returns the notation letter for the piece, cased by colour.
func (p Piece) Letter() byte {
	return PieceLetter(p.Type, p.Colour)
}

// String returns e.g. "White Knight on f3".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s on %s", p.Colour, p.Type, p.Pos)
}

package chess

import "github.com/lgbarn/chessrules-go/internal/errors"

// PromotionFunc chooses the piece a pawn promotes to. It is called
// synchronously while a move is being applied and must not call back
// into the board.
type PromotionFunc func() PieceType

// Board represents a chess board with all state needed for the game.
// Occupancy is derived by scanning the piece list. A Board is not safe
// for concurrent use.
type Board struct {
	// Every piece on the board, at most one per square.
	pieces []Piece

	// Who has the next move.
	ToMove Colour

	// The full-move counter, incremented after each Black move.
	MoveNumber uint

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// Castling rights still held.
	Castling Castling

	// Is en passant capture possible? If so EPSquare is the square
	// the capturing pawn moves to.
	EnPassant bool
	EPSquare  Position

	// Optional promotion chooser. When nil a promotion is left pending
	// until resolved by the caller.
	Promoter PromotionFunc

	// Set while a pawn waits on PromotionSquare for its promotion choice.
	PromotionPending bool
	PromotionSquare  Position
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// backRank lists the back-rank pieces from the a-file to the h-file.
var backRank = []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Reset sets up the standard chess starting position with full castling
// rights, White to move and both clocks at zero. The promoter is kept.
func (b *Board) Reset() {
	b.Clear()
	for _, colour := range []Colour{White, Black} {
		home := HomeRow(colour)
		pawns := PawnRow(colour)
		for x := 0; x < BoardSize; x++ {
			b.pieces = append(b.pieces,
				Piece{Type: backRank[x], Colour: colour, Pos: Pos(x, home)},
				Piece{Type: Pawn, Colour: colour, Pos: Pos(x, pawns)},
			)
		}
	}
	b.Castling = AllCastling
}

// Clear removes every piece and zeroes all derived state.
func (b *Board) Clear() {
	b.pieces = b.pieces[:0]
	b.ToMove = White
	b.MoveNumber = 0
	b.HalfmoveClock = 0
	b.Castling = NoCastling
	b.EnPassant = false
	b.EPSquare = Position{}
	b.PromotionPending = false
	b.PromotionSquare = Position{}
}

// Pieces returns a copy of the piece list.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// PieceCount returns the number of pieces on the board.
func (b *Board) PieceCount() int {
	return len(b.pieces)
}

func (b *Board) indexOf(pos Position) int {
	for i := range b.pieces {
		if b.pieces[i].Pos == pos {
			return i
		}
	}
	return -1
}

// PieceAt returns the piece standing on pos, if any.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	if i := b.indexOf(pos); i >= 0 {
		return b.pieces[i], true
	}
	return Piece{}, false
}

// ColourAt returns the colour of the piece on pos, or NoColour if empty.
func (b *Board) ColourAt(pos Position) Colour {
	if i := b.indexOf(pos); i >= 0 {
		return b.pieces[i].Colour
	}
	return NoColour
}

// IsEmpty reports whether no piece stands on pos.
func (b *Board) IsEmpty(pos Position) bool {
	return b.indexOf(pos) < 0
}

// AddPiece places a new piece on the board.
func (b *Board) AddPiece(p Piece) error {
	if err := p.validate(); err != nil {
		return err
	}
	if !p.Pos.Valid() {
		return &errors.ParseError{Err: errors.ErrInvalidFormat, Field: "square", Input: p.Pos.String()}
	}
	if !b.IsEmpty(p.Pos) {
		return errors.Wrapf(errors.ErrOccupiedSquare, "adding %s", p)
	}
	b.pieces = append(b.pieces, p)
	return nil
}

// RemovePiece takes the piece on pos off the board and returns it.
func (b *Board) RemovePiece(pos Position) (Piece, bool) {
	i := b.indexOf(pos)
	if i < 0 {
		return Piece{}, false
	}
	p := b.pieces[i]
	b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
	return p, true
}

// Relocate moves the piece on from to the empty square to.
// It returns false if from is empty or to is occupied.
func (b *Board) Relocate(from, to Position) bool {
	i := b.indexOf(from)
	if i < 0 || !to.Valid() || !b.IsEmpty(to) {
		return false
	}
	b.pieces[i].Pos = to
	return true
}

// Replace swaps the piece on pos for a new piece of the given type and the
// same colour. It returns false if pos is empty or the type is invalid.
func (b *Board) Replace(pos Position, pieceType PieceType) bool {
	i := b.indexOf(pos)
	if i < 0 || !pieceType.Valid() {
		return false
	}
	b.pieces[i] = Piece{Type: pieceType, Colour: b.pieces[i].Colour, Pos: pos}
	return true
}

// CanCastle reports whether the given castling right is still held.
func (b *Board) CanCastle(right Castling) bool {
	return b.Castling.Has(right)
}

// RevokeCastling removes rights. Rights are never granted back by moves.
func (b *Board) RevokeCastling(rights Castling) {
	b.Castling = b.Castling.Without(rights)
}

// CastlingString returns the castling rights in notation form, e.g. "KQkq".
func (b *Board) CastlingString() string {
	return b.Castling.String()
}

// Kings returns the kings currently on the board.
func (b *Board) Kings() []Piece {
	var kings []Piece
	for _, p := range b.pieces {
		if p.Type == King {
			kings = append(kings, p)
		}
	}
	return kings
}

// Winner returns the colour of the only remaining king. While zero or
// more than one king is on the board there is no winner.
func (b *Board) Winner() Colour {
	kings := b.Kings()
	if len(kings) != 1 {
		return NoColour
	}
	return kings[0].Colour
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.pieces = b.Pieces()
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
// The promoter is configuration, not state, and is not captured.
type BoardState struct {
	Pieces           []Piece
	ToMove           Colour
	MoveNumber       uint
	HalfmoveClock    uint
	Castling         Castling
	EnPassant        bool
	EPSquare         Position
	PromotionPending bool
	PromotionSquare  Position
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Pieces:           b.Pieces(),
		ToMove:           b.ToMove,
		MoveNumber:       b.MoveNumber,
		HalfmoveClock:    b.HalfmoveClock,
		Castling:         b.Castling,
		EnPassant:        b.EnPassant,
		EPSquare:         b.EPSquare,
		PromotionPending: b.PromotionPending,
		PromotionSquare:  b.PromotionSquare,
	}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.pieces = append(b.pieces[:0], s.Pieces...)
	b.ToMove = s.ToMove
	b.MoveNumber = s.MoveNumber
	b.HalfmoveClock = s.HalfmoveClock
	b.Castling = s.Castling
	b.EnPassant = s.EnPassant
	b.EPSquare = s.EPSquare
	b.PromotionPending = s.PromotionPending
	b.PromotionSquare = s.PromotionSquare
}

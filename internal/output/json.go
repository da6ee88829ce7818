package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONBoard represents a board in JSON format.
type JSONBoard struct {
	Label            string      `json:"label,omitempty"`
	FEN              string      `json:"fen"`
	ToMove           string      `json:"toMove"`
	Winner           string      `json:"winner,omitempty"`
	MoveNumber       uint        `json:"moveNumber"`
	HalfmoveClock    uint        `json:"halfmoveClock"`
	Castling         string      `json:"castling"`
	EnPassant        string      `json:"enPassant,omitempty"`
	PromotionPending string      `json:"promotionPending,omitempty"`
	Pieces           []JSONPiece `json:"pieces"`
	Hints            []string    `json:"hints,omitempty"`
	Moves            []JSONMove  `json:"moves,omitempty"`
	Error            string      `json:"error,omitempty"`
}

// JSONPiece represents a piece in JSON format.
type JSONPiece struct {
	Type   string `json:"type"`
	Color  string `json:"color"` // "white" or "black"
	Square string `json:"square"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	UCI       string `json:"uci"`
	Color     string `json:"color"`
	Piece     string `json:"piece"`
	From      string `json:"from"`
	To        string `json:"to"`
	Captured  string `json:"captured,omitempty"`
	Castling  string `json:"castling,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Pending   bool   `json:"promotionPending,omitempty"`
}

// JSONOutput holds multiple boards for array output.
type JSONOutput struct {
	Boards []*JSONBoard `json:"boards"`
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceName(p chess.PieceType) string {
	return strings.ToLower(p.String())
}

// BoardToJSON converts a snapshot to JSON format.
func BoardToJSON(s Snapshot) *JSONBoard {
	board := s.Board
	jb := &JSONBoard{
		Label:         s.Label,
		FEN:           engine.BoardToFEN(board),
		ToMove:        colourName(board.ToMove),
		MoveNumber:    board.MoveNumber,
		HalfmoveClock: board.HalfmoveClock,
		Castling:      board.CastlingString(),
		Pieces:        make([]JSONPiece, 0, board.PieceCount()),
	}
	if winner := board.Winner(); winner != chess.NoColour {
		jb.Winner = colourName(winner)
	}
	if board.EnPassant {
		jb.EnPassant = board.EPSquare.Algebraic()
	}
	if board.PromotionPending {
		jb.PromotionPending = board.PromotionSquare.Algebraic()
	}
	for _, p := range board.Pieces() {
		jb.Pieces = append(jb.Pieces, JSONPiece{
			Type:   pieceName(p.Type),
			Color:  colourName(p.Colour),
			Square: p.Pos.Algebraic(),
		})
	}
	for _, h := range s.Hints {
		jb.Hints = append(jb.Hints, h.Algebraic())
	}
	for _, m := range s.Moves {
		jb.Moves = append(jb.Moves, MoveToJSON(m))
	}
	if s.Err != nil {
		jb.Error = s.Err.Error()
	}
	return jb
}

// MoveToJSON converts a move result to JSON format.
func MoveToJSON(m engine.MoveResult) JSONMove {
	jm := JSONMove{
		UCI:       m.Text(),
		Color:     colourName(m.Piece.Colour),
		Piece:     pieceName(m.Piece.Type),
		From:      m.From.Algebraic(),
		To:        m.To.Algebraic(),
		EnPassant: m.EnPassant,
		Pending:   m.PromotionPending,
	}
	if m.Capture {
		jm.Captured = pieceName(m.Captured.Type)
	}
	if m.Castling != chess.NoCastling {
		jm.Castling = m.Castling.String()
	}
	if m.Promotion != chess.NoPiece {
		jm.Promotion = pieceName(m.Promotion)
	}
	return jm
}

func encodeJSON(w io.Writer, v interface{}, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

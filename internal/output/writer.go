package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Snapshot is a board together with what should be shown alongside it.
type Snapshot struct {
	Label string
	Board *chess.Board
	Moves []engine.MoveResult
	Hints []chess.Position
	Err   error
}

// BoardWriter is the interface for writing boards to output.
// Different implementations handle different output formats.
type BoardWriter interface {
	// WriteBoard writes a single snapshot to the output.
	WriteBoard(s Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.Config) BoardWriter {
	switch cfg.Output.Format {
	case config.FENFormat:
		return NewFENWriter(w)
	case config.JSONFormat:
		return NewJSONWriter(w, cfg)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes boards as diagrams.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteBoard writes the label, the move list, the diagram and a status line.
func (tw *TextWriter) WriteBoard(s Snapshot) error {
	if s.Label != "" {
		if _, err := fmt.Fprintf(tw.w, "[%s]\n", s.Label); err != nil {
			return err
		}
	}
	if tw.cfg.Output.ShowMoves {
		writeMoves(tw.w, s.Moves, 0)
	}
	if _, err := io.WriteString(tw.w, Diagram(s.Board, s.Hints, tw.cfg.Output.Coordinates)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw.w, Status(s.Board)); err != nil {
		return err
	}
	if s.Err != nil {
		if _, err := fmt.Fprintf(tw.w, "error: %v\n", s.Err); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(tw.w)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FENWriter writes one position string per board.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new position string writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WriteBoard writes the position string. A labelled or failed snapshot is
// preceded by a comment line in the replay script format.
func (fw *FENWriter) WriteBoard(s Snapshot) error {
	if s.Label != "" || s.Err != nil {
		comment := s.Label
		if s.Err != nil {
			comment = fmt.Sprintf("%s error: %v", s.Label, s.Err)
		}
		if _, err := fmt.Fprintf(fw.w, "# %s\n", comment); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(fw.w, engine.BoardToFEN(s.Board))
	return err
}

// Flush is a no-op; lines are written immediately.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes boards in JSON format.
// It buffers boards and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	boards []*JSONBoard
	single bool // If true, write each board immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches boards and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each board immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteBoard buffers a board for JSON output (or writes immediately in single mode).
// The snapshot is converted straight away, so the board may change afterwards.
func (jw *JSONWriter) WriteBoard(s Snapshot) error {
	jb := BoardToJSON(s)
	if jw.single {
		return encodeJSON(jw.w, jb, jw.cfg.Output.Indent)
	}
	jw.boards = append(jw.boards, jb)
	return nil
}

// Flush writes all buffered boards as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.boards) == 0 {
		return nil
	}
	err := encodeJSON(jw.w, &JSONOutput{Boards: jw.boards}, jw.cfg.Output.Indent)

	// Clear buffer after writing
	jw.boards = jw.boards[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat selects how a board is written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // ASCII diagram
	FENFormat                      // Single position string
	JSONFormat                     // JSON document
)

var outputFormatNames = map[OutputFormat]string{
	TextFormat: "text",
	FENFormat:  "fen",
	JSONFormat: "json",
}

func (f OutputFormat) String() string {
	if name, ok := outputFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat maps a format name to an OutputFormat. Names are
// case-insensitive.
func ParseOutputFormat(name string) (OutputFormat, error) {
	lower := strings.ToLower(name)
	for f, n := range outputFormatNames {
		if n == lower {
			return f, nil
		}
	}
	return TextFormat, fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how boards are written.
	Format OutputFormat

	// Coordinates labels files and ranks around the text diagram.
	Coordinates bool

	// ShowHints marks the destinations of the hinted piece in the diagram
	// and lists them in JSON output.
	ShowHints bool

	// HintSquare names the square whose moves are hinted.
	HintSquare string

	// Indent pretty-prints JSON output.
	Indent bool

	// ShowMoves lists the moves that were played before the board.
	ShowMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      TextFormat,
		Coordinates: true,
		Indent:      true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if _, ok := outputFormatNames[o.Format]; !ok {
		return fmt.Errorf("output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	if o.ShowHints && o.HintSquare == "" {
		return fmt.Errorf("hints requested without a square: %w", errors.ErrInvalidConfig)
	}
	return nil
}

package config

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithCoordinates controls file and rank labels on text diagrams.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Output.Coordinates = enabled
	return b
}

// WithHints shows the moves of the piece on square.
func (b *ConfigBuilder) WithHints(square string) *ConfigBuilder {
	b.cfg.Output.ShowHints = square != ""
	b.cfg.Output.HintSquare = square
	return b
}

// WithIndent controls JSON pretty-printing.
func (b *ConfigBuilder) WithIndent(enabled bool) *ConfigBuilder {
	b.cfg.Output.Indent = enabled
	return b
}

// WithAutoPromote sets the piece pawns promote to without asking.
func (b *ConfigBuilder) WithAutoPromote(piece chess.PieceType) *ConfigBuilder {
	b.cfg.Rules.AutoPromote = piece
	return b
}

// WithStrictTurns controls turn and destination checking.
func (b *ConfigBuilder) WithStrictTurns(enabled bool) *ConfigBuilder {
	b.cfg.Rules.StrictTurns = enabled
	return b
}

// WithStopOnError controls whether a replay script stops at its first bad move.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.Rules.StopOnError = enabled
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithSuppressDuplicates skips repeated final positions in batch output.
func (b *ConfigBuilder) WithSuppressDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.SuppressDuplicates = enabled
	return b
}

// WithDuplicateMatching sets how duplicates are matched: exactPlies also
// compares move counts and capacity bounds the positions remembered.
func (b *ConfigBuilder) WithDuplicateMatching(exactPlies bool, capacity int) *ConfigBuilder {
	b.cfg.DuplicateExactPlies = exactPlies
	b.cfg.DuplicateCapacity = capacity
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

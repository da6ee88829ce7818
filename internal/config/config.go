// Package config provides configuration for the chessrules tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summaries, 2=running commentary

	Output *OutputConfig
	Rules  *RulesConfig

	// Input
	StartFEN  string // Empty means the standard starting position
	BatchFile string
	Workers   int

	// Batch output
	SuppressDuplicates  bool // Skip boards whose final position was already written
	DuplicateExactPlies bool // Duplicates must also have the same number of moves
	DuplicateCapacity   int  // Positions remembered for duplicate checks; 0 is unlimited

	// Output streams
	OutputFilename string
	OutputFile     io.Writer
	LogFile        io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Rules:      NewRulesConfig(),
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count %d must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d is negative: %w", c.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	if c.Output == nil || c.Rules == nil {
		return fmt.Errorf("missing output or rules section: %w", errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Rules.Validate()
}

// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

var (
	// Input options
	fenFlag   = flag.String("fen", "", "Starting position (default: standard start)")
	movesFlag = flag.String("moves", "", "Space-separated coordinate moves to play, e.g. 'e2e4 e7e5'")
	batchFile = flag.String("batch", "", "Replay every script in this file ('-' for stdin)")
	workers   = flag.Int("j", 0, "Number of batch workers (0 = one per CPU core)")

	// Mode options
	interactive = flag.Bool("i", false, "Interactive session: enter squares to select and move")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("W", "text", "Output format: text, fen, json")
	hintSquare   = flag.String("hints", "", "Show the possible moves of the piece on this square")
	noCoords     = flag.Bool("nocoords", false, "Don't label ranks and files in text diagrams")
	showMoves    = flag.Bool("showmoves", false, "List the moves played above each board")
	compactJSON  = flag.Bool("compact", false, "Don't indent JSON output")
	noDuplicates = flag.Bool("D", false, "Batch: don't output scripts ending in an already written position")
	dupPlies     = flag.Bool("Dply", false, "With -D, duplicates must also have the same number of moves")
	dupCapacity  = flag.Int("Dmax", 0, "With -D, remember at most this many positions (0 = unlimited)")

	// Rules options
	promoteFlag = flag.String("promote", "", "Promote pawns automatically to q, r, b or n")
	relaxed     = flag.Bool("relaxed", false, "Apply moves without turn and move-pattern checks")
	keepGoing   = flag.Bool("k", false, "Keep replaying a script after a rejected move")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summaries, 2 running commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	if err := applyRulesFlags(cfg); err != nil {
		return err
	}
	applyInputFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyOutputFlags configures the output format and diagram options.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.ShowMoves = *showMoves
	cfg.Output.Indent = !*compactJSON
	cfg.Output.ShowHints = *hintSquare != ""
	cfg.Output.HintSquare = *hintSquare
	cfg.OutputFilename = *outputFile
	return nil
}

// applyRulesFlags configures promotion and move checking.
func applyRulesFlags(cfg *config.Config) error {
	piece, err := parsePromotion(*promoteFlag)
	if err != nil {
		return err
	}
	cfg.Rules.AutoPromote = piece
	cfg.Rules.StrictTurns = !*relaxed
	cfg.Rules.StopOnError = !*keepGoing
	return nil
}

// applyInputFlags configures the starting position and batch settings.
func applyInputFlags(cfg *config.Config) {
	cfg.StartFEN = *fenFlag
	cfg.BatchFile = *batchFile
	cfg.SuppressDuplicates = *noDuplicates
	cfg.DuplicateExactPlies = *dupPlies
	cfg.DuplicateCapacity = *dupCapacity
	cfg.Workers = *workers
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// parsePromotion maps a promotion letter to a piece type. An empty
// string means promotions stay pending.
func parsePromotion(s string) (chess.PieceType, error) {
	if s == "" {
		return chess.NoPiece, nil
	}
	if len(s) == 1 {
		if piece := chess.PieceTypeFromLetter(s[0]); piece.Promotable() {
			return piece, nil
		}
	}
	return chess.NoPiece, fmt.Errorf("promotion piece %q is not one of q, r, b, n: %w", s, errors.ErrInvalidConfig)
}

// moveArgs joins the -moves flag with any positional arguments.
func moveArgs(args []string) []string {
	moves := strings.Fields(*movesFlag)
	for _, a := range args {
		moves = append(moves, strings.Fields(a)...)
	}
	return moves
}

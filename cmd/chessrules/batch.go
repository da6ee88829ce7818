package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/replay"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// runSingle plays moves from the configured start position and writes the
// final board.
func runSingle(cfg *config.Config, moves []string) error {
	script := replay.Script{Number: 1, FEN: cfg.StartFEN, Moves: moves}
	outcome := replay.Run(script, cfg.Rules)
	if outcome.Board == nil {
		return outcome.Err()
	}

	snap := output.Snapshot{Board: outcome.Board, Moves: outcome.Moves}
	if cfg.Output.ShowHints {
		hints, err := hintsFor(outcome.Board, cfg.Output.HintSquare)
		if err != nil {
			return err
		}
		snap.Hints = hints
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WriteBoard(snap); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	for _, err := range outcome.Errors {
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "%v\n", err)
		}
	}
	return outcome.Err()
}

// runBatch replays every script in the batch file and writes one board per
// script in input order.
func runBatch(cfg *config.Config, stdin io.Reader) error {
	var r io.Reader = stdin
	name := "stdin"
	if cfg.BatchFile != "-" {
		file, err := os.Open(cfg.BatchFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return err
		}
		defer file.Close()
		r, name = file, cfg.BatchFile
	}

	scripts, err := replay.ReadScripts(r, name)
	if err != nil {
		return err
	}
	if cfg.StartFEN != "" {
		for i := range scripts {
			if scripts[i].FEN == "" {
				scripts[i].FEN = cfg.StartFEN
			}
		}
	}

	outcomes := worker.RunAll(scripts, cfg.Rules, false, worker.WithWorkers(cfg.Workers))

	w := output.NewWriter(cfg.OutputFile, cfg)
	var detector *hashing.DuplicateDetector
	if cfg.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(cfg.DuplicateExactPlies, cfg.DuplicateCapacity)
	}
	failed := 0
	for _, o := range outcomes {
		if o.Err() != nil {
			failed++
			if cfg.Verbosity > 1 {
				for _, e := range o.Errors {
					fmt.Fprintf(cfg.LogFile, "%s: %v\n", o.Script.Name(), e)
				}
			}
		}
		if o.Board == nil {
			continue
		}
		if detector != nil && detector.CheckAndAdd(o.Board, len(o.Moves)) {
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "%s: duplicate position skipped\n", o.Script.Name())
			}
			continue
		}
		if err := w.WriteBoard(output.Snapshot{
			Label: o.Script.Name(),
			Board: o.Board,
			Moves: o.Moves,
			Err:   o.Err(),
		}); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d script(s) replayed, %d failed.\n", len(outcomes), failed)
		if detector != nil {
			fmt.Fprintf(cfg.LogFile, "%d duplicate position(s) skipped.\n", detector.DuplicateCount())
			if detector.IsFull() {
				fmt.Fprintf(cfg.LogFile, "Duplicate table full after %d position(s).\n", detector.UniqueCount())
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(outcomes))
	}
	return nil
}

// hintsFor returns the possible moves of the piece on the named square.
func hintsFor(board *chess.Board, square string) ([]chess.Position, error) {
	pos, err := chess.ParseAlgebraic(square)
	if err != nil {
		return nil, err
	}
	return engine.PossibleMoves(board, pos), nil
}

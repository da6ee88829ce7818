// chessrules replays moves under the chess rules engine and shows the
// resulting positions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	code := run(cfg, flag.Args(), os.Stdin)
	closeFile(cfg.OutputFile)
	closeFile(cfg.LogFile)
	os.Exit(code)
}

// run dispatches to the selected mode and returns the exit status.
func run(cfg *config.Config, args []string, stdin io.Reader) int {
	var err error
	switch {
	case *interactive:
		err = runInteractive(cfg, stdin)
	case cfg.BatchFile != "":
		err = runBatch(cfg, stdin)
	default:
		err = runSingle(cfg, moveArgs(args))
	}
	if err != nil {
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// closeFile closes w if it is a file other than the standard streams.
func closeFile(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || f == os.Stdout || f == os.Stderr {
		return
	}
	f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays coordinate moves (e2e4, e7e8q) under the chess rules and shows the position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  text   Board diagram with status line (default)\n")
	fmt.Fprintf(os.Stderr, "  fen    Position string\n")
	fmt.Fprintf(os.Stderr, "  json   JSON document\n")
	fmt.Fprintf(os.Stderr, "\nBatch scripts (-batch), one per line:\n")
	fmt.Fprintf(os.Stderr, "  [<position> |] <move> <move> ...\n")
}

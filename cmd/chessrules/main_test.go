package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// testConfig returns a config writing to buffers.
func testConfig(format config.OutputFormat) (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	out, log := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithOutputFormat(format).
		WithOutput(out).
		WithLog(log).
		Build()
	return cfg, out, log
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreString(outputFormat, "json")()
	defer saveRestoreString(promoteFlag, "n")()
	defer saveRestoreBool(relaxed, true)()
	defer saveRestoreBool(keepGoing, true)()
	defer saveRestoreBool(noCoords, true)()
	defer saveRestoreString(hintSquare, "g1")()
	defer saveRestoreInt(workers, 3)()
	defer saveRestoreBool(quiet, true)()
	defer saveRestoreString(fenFlag, "8/8/8/8/8/8/8/4K3 w - - 0 1")()
	defer saveRestoreBool(noDuplicates, true)()
	defer saveRestoreBool(dupPlies, true)()
	defer saveRestoreInt(dupCapacity, 10)()

	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))

	testutil.AssertEqual(t, cfg.Output.Format, config.JSONFormat)
	testutil.AssertEqual(t, cfg.Rules.AutoPromote, chess.Knight)
	testutil.AssertFalse(t, cfg.Rules.StrictTurns, "StrictTurns")
	testutil.AssertFalse(t, cfg.Rules.StopOnError, "StopOnError")
	testutil.AssertFalse(t, cfg.Output.Coordinates, "Coordinates")
	testutil.AssertTrue(t, cfg.Output.ShowHints, "ShowHints")
	testutil.AssertEqual(t, cfg.Output.HintSquare, "g1")
	testutil.AssertEqual(t, cfg.Workers, 3)
	testutil.AssertEqual(t, cfg.Verbosity, 0)
	testutil.AssertEqual(t, cfg.StartFEN, "8/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertTrue(t, cfg.SuppressDuplicates, "SuppressDuplicates")
	testutil.AssertTrue(t, cfg.DuplicateExactPlies, "DuplicateExactPlies")
	testutil.AssertEqual(t, cfg.DuplicateCapacity, 10)
}

func TestApplyFlags_Defaults(t *testing.T) {
	defer saveRestoreInt(workers, 0)()

	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))
	testutil.AssertEqual(t, cfg.Output.Format, config.TextFormat)
	testutil.AssertEqual(t, cfg.Rules.AutoPromote, chess.NoPiece)
	testutil.AssertTrue(t, cfg.Rules.StrictTurns, "StrictTurns")
	testutil.AssertTrue(t, cfg.Workers >= 1, "Workers = %d", cfg.Workers)
}

func TestApplyFlags_Invalid(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "pgn")()
		testutil.AssertErrorIs(t, applyFlags(config.NewConfig()), errors.ErrInvalidConfig)
	})
	t.Run("promotion", func(t *testing.T) {
		defer saveRestoreString(promoteFlag, "k")()
		testutil.AssertErrorIs(t, applyFlags(config.NewConfig()), errors.ErrInvalidConfig)
	})
}

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.PieceType
		wantErr bool
	}{
		{"", chess.NoPiece, false},
		{"q", chess.Queen, false},
		{"R", chess.Rook, false},
		{"b", chess.Bishop, false},
		{"n", chess.Knight, false},
		{"k", chess.NoPiece, true},
		{"p", chess.NoPiece, true},
		{"qq", chess.NoPiece, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePromotion(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePromotion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestMoveArgs(t *testing.T) {
	defer saveRestoreString(movesFlag, "e2e4  e7e5")()
	got := moveArgs([]string{"g1f3", "b8c6 f1c4"})
	want := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("moveArgs() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSingle_FEN(t *testing.T) {
	cfg, out, _ := testConfig(config.FENFormat)

	testutil.AssertNoError(t, runSingle(cfg, []string{"e2e4", "e7e5", "g1f3"}))
	testutil.AssertEqual(t, out.String(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 1\n")
}

func TestRunSingle_TextWithHints(t *testing.T) {
	cfg, out, _ := testConfig(config.TextFormat)
	cfg.Output.ShowHints = true
	cfg.Output.HintSquare = "g1"

	testutil.AssertNoError(t, runSingle(cfg, nil))
	testutil.AssertContains(t, out.String(), "3 | . . . . . * . * |")
	testutil.AssertContains(t, out.String(), "White to move, move 0")
}

func TestRunSingle_BadHintSquare(t *testing.T) {
	cfg, _, _ := testConfig(config.TextFormat)
	cfg.Output.ShowHints = true
	cfg.Output.HintSquare = "z9"

	testutil.AssertErrorIs(t, runSingle(cfg, nil), errors.ErrInvalidFormat)
}

func TestRunSingle_IllegalMove(t *testing.T) {
	cfg, out, log := testConfig(config.JSONFormat)

	err := runSingle(cfg, []string{"e2e4", "d2d4"})
	testutil.AssertErrorIs(t, err, errors.ErrWrongTurn)
	testutil.AssertContains(t, log.String(), "ply 2")

	var doc output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(doc.Boards) != 1 || len(doc.Boards[0].Moves) != 1 {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestRunSingle_BadStartPosition(t *testing.T) {
	cfg, out, _ := testConfig(config.FENFormat)
	cfg.StartFEN = "8/8 w - - 0 1"

	testutil.AssertErrorIs(t, runSingle(cfg, nil), errors.ErrInvalidFormat)
	testutil.AssertEqual(t, out.Len(), 0)
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scripts.txt")
	content := strings.Join([]string{
		"# batch",
		"e2e4 e7e5",
		"4k3/1P6/8/8/8/8/8/4K3 w - - 0 1 | b7b8q",
		"e2e5",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, out, log := testConfig(config.FENFormat)
	cfg.BatchFile = path
	cfg.Workers = 2

	err := runBatch(cfg, nil)
	if err == nil {
		t.Fatal("runBatch() should report the failed script")
	}

	want := strings.Join([]string{
		"# " + path + ":2",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		"# " + path + ":3",
		"1Q2k3/8/8/8/8/8/8/4K3 b - - 0 1",
	}, "\n")
	testutil.AssertContains(t, out.String(), want)
	testutil.AssertContains(t, out.String(), "# "+path+":4 error: script 3, ply 1")
	testutil.AssertContains(t, log.String(), "3 script(s) replayed, 1 failed.")
}

func TestRunBatch_Stdin(t *testing.T) {
	cfg, out, _ := testConfig(config.FENFormat)
	cfg.BatchFile = "-"
	cfg.StartFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"

	testutil.AssertNoError(t, runBatch(cfg, strings.NewReader("e1e2\n")))
	testutil.AssertContains(t, out.String(), "4k3/8/8/8/8/8/4K3/8 b - - 1 1\n")
}

func TestRunBatch_MissingFile(t *testing.T) {
	cfg, _, _ := testConfig(config.FENFormat)
	cfg.BatchFile = filepath.Join(t.TempDir(), "missing.txt")
	if err := runBatch(cfg, nil); err == nil {
		t.Error("runBatch() with missing file should fail")
	}
}

func TestRun_ExitCodes(t *testing.T) {
	defer saveRestoreBool(interactive, false)()
	defer saveRestoreString(movesFlag, "")()

	cfg, _, _ := testConfig(config.FENFormat)
	testutil.AssertEqual(t, run(cfg, []string{"e2e4"}, nil), 0)

	cfg, _, log := testConfig(config.FENFormat)
	testutil.AssertEqual(t, run(cfg, []string{"e2e5"}, nil), 1)
	testutil.AssertContains(t, log.String(), "Error:")
}

func TestRunBatch_SuppressDuplicates(t *testing.T) {
	cfg, out, log := testConfig(config.FENFormat)
	cfg.BatchFile = "-"
	cfg.SuppressDuplicates = true
	scripts := "g1f3 g8f6 b1c3\nb1c3 g8f6 g1f3\ne2e4\n"

	testutil.AssertNoError(t, runBatch(cfg, strings.NewReader(scripts)))

	got := out.String()
	testutil.AssertContains(t, got, "# stdin:1\n")
	testutil.AssertContains(t, got, "# stdin:3\n")
	if strings.Contains(got, "# stdin:2") {
		t.Errorf("transposed duplicate was written:\n%s", got)
	}
	testutil.AssertContains(t, log.String(), "1 duplicate position(s) skipped.")
}

func TestRunBatch_DuplicateMatching(t *testing.T) {
	t.Run("exact plies", func(t *testing.T) {
		cfg, out, log := testConfig(config.FENFormat)
		cfg.BatchFile = "-"
		cfg.SuppressDuplicates = true
		cfg.DuplicateExactPlies = true
		// The knight round trip reaches the same position in five moves.
		scripts := "e2e4\ng1f3 g8f6 f3g1 f6g8 e2e4\ne2e4\n"

		testutil.AssertNoError(t, runBatch(cfg, strings.NewReader(scripts)))
		testutil.AssertContains(t, out.String(), "# stdin:2\n")
		if strings.Contains(out.String(), "# stdin:3") {
			t.Errorf("same position and move count was written twice:\n%s", out.String())
		}
		testutil.AssertContains(t, log.String(), "1 duplicate position(s) skipped.")
	})

	t.Run("capacity", func(t *testing.T) {
		cfg, out, log := testConfig(config.FENFormat)
		cfg.BatchFile = "-"
		cfg.SuppressDuplicates = true
		cfg.DuplicateCapacity = 1
		scripts := "e2e4\nd2d4\nd2d4\ne2e4\n"

		testutil.AssertNoError(t, runBatch(cfg, strings.NewReader(scripts)))
		got := out.String()
		testutil.AssertContains(t, got, "# stdin:2\n")
		testutil.AssertContains(t, got, "# stdin:3\n")
		if strings.Contains(got, "# stdin:4") {
			t.Errorf("remembered position was written twice:\n%s", got)
		}
		testutil.AssertContains(t, log.String(), "Duplicate table full after 1 position(s).")
	})
}

package replay

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Script
		wantOK bool
	}{
		{"blank", "   ", Script{}, false},
		{"comment", "# opening traps", Script{}, false},
		{"indented comment", "  # note", Script{}, false},
		{"moves only", "e2e4  e7e5\tg1f3", Script{Moves: []string{"e2e4", "e7e5", "g1f3"}}, true},
		{
			"fen and moves",
			"4k3/1P6/8/8/8/8/8/4K3 w - - 0 1 | b7b8q",
			Script{FEN: "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1", Moves: []string{"b7b8q"}},
			true,
		},
		{
			"fen without moves",
			"8/8/8/8/8/8/8/4K3 w - - 0 1 |",
			Script{FEN: "8/8/8/8/8/8/8/4K3 w - - 0 1"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseLine(tt.line)
			testutil.AssertNoError(t, err)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLine_Invalid(t *testing.T) {
	for _, line := range []string{"| e2e4", "a | b | c"} {
		_, _, err := ParseLine(line)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidFormat, "line %q", line)
	}
}

func TestReadScripts(t *testing.T) {
	input := strings.Join([]string{
		"# two games",
		"e2e4 e7e5",
		"",
		"8/8/8/8/8/8/8/4K3 w - - 0 1 | e1e2",
	}, "\n")

	scripts, err := ReadScripts(strings.NewReader(input), "games.txt")
	testutil.AssertNoError(t, err)

	want := []Script{
		{Number: 1, Source: "games.txt", Line: 2, Moves: []string{"e2e4", "e7e5"}},
		{Number: 2, Source: "games.txt", Line: 4, FEN: "8/8/8/8/8/8/8/4K3 w - - 0 1", Moves: []string{"e1e2"}},
	}
	if diff := cmp.Diff(want, scripts); diff != "" {
		t.Errorf("ReadScripts() mismatch (-want +got):\n%s", diff)
	}
	testutil.AssertEqual(t, scripts[1].Name(), "games.txt:4")
	testutil.AssertEqual(t, Script{Number: 3}.Name(), "script 3")
}

func TestReadScripts_Error(t *testing.T) {
	_, err := ReadScripts(strings.NewReader("e2e4\n| e7e5\n"), "bad.txt")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFormat)
	testutil.AssertContains(t, err.Error(), "bad.txt:2")
}

func TestRun(t *testing.T) {
	script := Script{Number: 1, Moves: []string{"e2e4", "d7d5", "e4d5", "d8d5"}}
	out := Run(script, config.NewRulesConfig())

	testutil.AssertNoError(t, out.Err())
	testutil.AssertEqual(t, len(out.Moves), 4)
	testutil.AssertTrue(t, out.Moves[2].Capture, "e4d5 captures")
	testutil.AssertEqual(t, engine.BoardToFEN(out.Board), "rnb1kbnr/ppp1pppp/8/3q4/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
}

func TestRun_StrictTurns(t *testing.T) {
	script := Script{Number: 4, Moves: []string{"e2e4", "e4e5"}}

	out := Run(script, config.NewRulesConfig())
	if len(out.Errors) != 1 {
		t.Fatalf("Errors = %v, want one", out.Errors)
	}
	testutil.AssertErrorIs(t, out.Err(), errors.ErrWrongTurn)

	var me *errors.MoveError
	if !stderrors.As(out.Err(), &me) {
		t.Fatalf("error %v is not a *MoveError", out.Err())
	}
	testutil.AssertEqual(t, []interface{}{me.Script, me.Ply, me.Move}, []interface{}{4, 2, "e4e5"})

	relaxed := config.NewRulesConfig()
	relaxed.StrictTurns = false
	out = Run(script, relaxed)
	testutil.AssertNoError(t, out.Err())
	testutil.AssertPieceAt(t, out.Board, "e5", chess.Pawn, chess.White)
}

func TestRun_StopOnError(t *testing.T) {
	script := Script{Moves: []string{"e2e5", "e2e4", "zz", "e7e5"}}

	rules := config.NewRulesConfig()
	out := Run(script, rules)
	testutil.AssertEqual(t, len(out.Errors), 1)
	testutil.AssertEqual(t, len(out.Moves), 0)

	rules.StopOnError = false
	out = Run(script, rules)
	testutil.AssertEqual(t, len(out.Errors), 2)
	testutil.AssertEqual(t, len(out.Moves), 2)
	testutil.AssertErrorIs(t, out.Errors[1], errors.ErrInvalidFormat)
}

func TestRun_Promotion(t *testing.T) {
	const fen = "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1"

	t.Run("pending without auto promotion", func(t *testing.T) {
		out := Run(Script{FEN: fen, Moves: []string{"b7b8", "e8d8"}}, config.NewRulesConfig())
		testutil.AssertErrorIs(t, out.Err(), errors.ErrPromotionPending)
		testutil.AssertTrue(t, out.Board.PromotionPending)
	})

	t.Run("auto promotion", func(t *testing.T) {
		rules := config.NewRulesConfig()
		rules.AutoPromote = chess.Rook
		out := Run(Script{FEN: fen, Moves: []string{"b7b8", "e8d8"}}, rules)
		testutil.AssertNoError(t, out.Err())
		testutil.AssertPieceAt(t, out.Board, "b8", chess.Rook, chess.White)
	})

	t.Run("letter wins over auto promotion", func(t *testing.T) {
		rules := config.NewRulesConfig()
		rules.AutoPromote = chess.Rook
		out := Run(Script{FEN: fen, Moves: []string{"b7b8b"}}, rules)
		testutil.AssertNoError(t, out.Err())
		testutil.AssertPieceAt(t, out.Board, "b8", chess.Bishop, chess.White)
	})
}

func TestRun_BadFEN(t *testing.T) {
	out := Run(Script{Number: 2, FEN: "8/8/8 w - - 0 1", Moves: []string{"e2e4"}}, config.NewRulesConfig())
	if out.Board != nil {
		t.Error("Board should be nil for a bad start position")
	}
	testutil.AssertErrorIs(t, out.Err(), errors.ErrInvalidFormat)
	testutil.AssertContains(t, out.Err().Error(), "script 2")
}

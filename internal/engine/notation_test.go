package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		text string
		want MoveText
	}{
		{"e2e4", MoveText{From: chess.Pos(4, 6), To: chess.Pos(4, 4)}},
		{"a8h1", MoveText{From: chess.Pos(0, 0), To: chess.Pos(7, 7)}},
		{"e7e8q", MoveText{From: chess.Pos(4, 1), To: chess.Pos(4, 0), Promotion: chess.Queen}},
		{"b2b1N", MoveText{From: chess.Pos(1, 6), To: chess.Pos(1, 7), Promotion: chess.Knight}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, text := range []string{"", "e2", "e2e", "e2e4qq", "e0e4", "i2e4", "e2e4p", "e2e4K", "e2-e4"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseMove(text)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFormat)
		})
	}
}

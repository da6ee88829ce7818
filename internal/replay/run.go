package replay

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Outcome is the result of running one script.
type Outcome struct {
	Script Script
	Board  *chess.Board // Final position; nil if the start position was bad
	Moves  []engine.MoveResult
	Errors []error // Rejected moves, or the start position error
}

// Err returns the first failure, or nil.
func (o Outcome) Err() error {
	if len(o.Errors) == 0 {
		return nil
	}
	return o.Errors[0]
}

// Run plays script on a new board under rules. Each rejected move is
// recorded as an *errors.MoveError; with rules.StopOnError the first one
// ends the script.
func Run(script Script, rules *config.RulesConfig) Outcome {
	out := Outcome{Script: script}

	board := engine.NewInitialBoard()
	if script.FEN != "" {
		var err error
		if board, err = engine.NewBoardFromFEN(script.FEN); err != nil {
			out.Errors = append(out.Errors, &errors.MoveError{Err: err, Script: script.Number})
			return out
		}
	}
	board.Promoter = rules.Promoter()
	out.Board = board

	play := engine.ApplyMoveText
	if rules.StrictTurns {
		play = engine.PlayMoveText
	}

	for i, text := range script.Moves {
		result, err := play(board, text)
		if err != nil {
			out.Errors = append(out.Errors, &errors.MoveError{
				Err:    err,
				Script: script.Number,
				Ply:    i + 1,
				Move:   text,
			})
			if rules.StopOnError {
				break
			}
			continue
		}
		out.Moves = append(out.Moves, result)
	}
	return out
}

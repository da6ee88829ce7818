package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RulesConfig holds settings that change how moves are accepted.
type RulesConfig struct {
	// AutoPromote is the piece pawns become without asking. NoPiece
	// leaves promotions pending until resolved explicitly.
	AutoPromote chess.PieceType

	// StrictTurns rejects moves by the side not to move and moves outside
	// the piece's generated destinations. When false, moves are applied
	// as given.
	StrictTurns bool

	// StopOnError ends a replay script at its first bad move.
	StopOnError bool
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		AutoPromote: chess.NoPiece,
		StrictTurns: true,
		StopOnError: true,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.AutoPromote != chess.NoPiece && !r.AutoPromote.Promotable() {
		return fmt.Errorf("cannot promote to %s: %w", r.AutoPromote, errors.ErrInvalidConfig)
	}
	return nil
}

// Promoter returns a promotion callback for AutoPromote, or nil when
// promotions should stay pending.
func (r *RulesConfig) Promoter() chess.PromotionFunc {
	if r.AutoPromote == chess.NoPiece {
		return nil
	}
	piece := r.AutoPromote
	return func() chess.PieceType { return piece }
}

// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidConstruction indicates a piece built without a colour or type.
	ErrInvalidConstruction = errors.New("invalid piece construction")

	// ErrOccupiedSquare indicates a piece was added to a non-empty square.
	ErrOccupiedSquare = errors.New("square already occupied")

	// ErrInvalidFormat indicates malformed algebraic or position notation.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrIllegalMove indicates a move the board refused to execute.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongTurn indicates a move by the side not on move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrPromotionPending indicates a promotion choice must be made first.
	ErrPromotionPending = errors.New("promotion choice pending")

	// ErrNoPromotionPending indicates a promotion choice with nothing to promote.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrInvalidPromotion indicates a promotion to something other than Q, R, B or N.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with replay context: which ply of which script
// failed, and the squares involved. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Script int    // 1-based script number in a batch (0 if not applicable)
	Ply    int    // 1-based ply within the script (0 if not applicable)
	Move   string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Script > 0 {
		parts = append(parts, fmt.Sprintf("script %d", e.Script))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a notation parsing error. Field names the part of
// the input that was rejected ("placement", "castling", "square", ...).
type ParseError struct {
	Err      error  // The underlying error
	Field    string // Which field of the notation failed
	Input    string // The offending text
	Expected string // What was expected
}

// Error returns a formatted error message with field and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Expected != "" && e.Input != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Input))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Input != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Input))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

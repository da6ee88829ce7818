// Package replay reads move scripts and plays them out on fresh boards.
//
// A script is one line of text: an optional starting position followed by
// a bar, then coordinate moves separated by spaces.
//
//	rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 | e2e4 e7e5
//	e2e4 d7d5 e4d5
//
// Blank lines and lines starting with '#' are ignored.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

const (
	fenSeparator  = "|"
	commentPrefix = "#"
)

// Script is a starting position and the moves to play from it.
type Script struct {
	Number int    // 1-based position among the scripts read
	Source string // Input name, for messages
	Line   int    // 1-based line in Source
	FEN    string // Empty means the standard starting position
	Moves  []string
}

// Name identifies the script in messages.
func (s Script) Name() string {
	if s.Source == "" {
		return fmt.Sprintf("script %d", s.Number)
	}
	return fmt.Sprintf("%s:%d", s.Source, s.Line)
}

// ParseLine parses one script line. ok is false for blank and comment lines.
func ParseLine(line string) (script Script, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
		return Script{}, false, nil
	}

	movesPart := trimmed
	if strings.Count(trimmed, fenSeparator) > 1 {
		return Script{}, false, &errors.ParseError{
			Err:      errors.ErrInvalidFormat,
			Field:    "script",
			Input:    trimmed,
			Expected: "at most one " + fenSeparator,
		}
	}
	if i := strings.Index(trimmed, fenSeparator); i >= 0 {
		script.FEN = strings.TrimSpace(trimmed[:i])
		movesPart = trimmed[i+1:]
		if script.FEN == "" {
			return Script{}, false, &errors.ParseError{
				Err:      errors.ErrInvalidFormat,
				Field:    "script",
				Input:    trimmed,
				Expected: "position before " + fenSeparator,
			}
		}
	}
	script.Moves = strings.Fields(movesPart)
	return script, true, nil
}

// ReadScripts reads every script from r. source names r in messages.
func ReadScripts(r io.Reader, source string) ([]Script, error) {
	var scripts []Script
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		script, ok, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, lineNo, err)
		}
		if !ok {
			continue
		}
		script.Number = len(scripts) + 1
		script.Source = source
		script.Line = lineNo
		scripts = append(scripts, script)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return scripts, nil
}

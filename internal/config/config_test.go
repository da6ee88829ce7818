package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != TextFormat {
		t.Errorf("Format = %v, want %v", cfg.Format, TextFormat)
	}
	if !cfg.Coordinates {
		t.Error("Coordinates should be true by default")
	}
	if cfg.ShowHints {
		t.Error("ShowHints should be false by default")
	}
	if !cfg.Indent {
		t.Error("Indent should be true by default")
	}
}

// TestRulesConfig_Defaults verifies RulesConfig has sensible defaults
func TestRulesConfig_Defaults(t *testing.T) {
	cfg := NewRulesConfig()

	if cfg.AutoPromote != chess.NoPiece {
		t.Errorf("AutoPromote = %v, want None", cfg.AutoPromote)
	}
	if !cfg.StrictTurns {
		t.Error("StrictTurns should be true by default")
	}
	if cfg.Promoter() != nil {
		t.Error("Promoter() should be nil without AutoPromote")
	}
}

func TestRulesConfig_Promoter(t *testing.T) {
	cfg := NewRulesConfig()
	cfg.AutoPromote = chess.Rook

	promoter := cfg.Promoter()
	if promoter == nil {
		t.Fatal("Promoter() = nil")
	}
	if got := promoter(); got != chess.Rook {
		t.Errorf("promoter() = %v, want Rook", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative duplicate capacity", func(c *Config) { c.DuplicateCapacity = -1 }, true},
		{"unknown format", func(c *Config) { c.Output.Format = OutputFormat(9) }, true},
		{"hints without square", func(c *Config) { c.Output.ShowHints = true }, true},
		{"hints with square", func(c *Config) { c.Output.ShowHints, c.Output.HintSquare = true, "e2" }, false},
		{"promote to king", func(c *Config) { c.Rules.AutoPromote = chess.King }, true},
		{"promote to pawn", func(c *Config) { c.Rules.AutoPromote = chess.Pawn }, true},
		{"promote to knight", func(c *Config) { c.Rules.AutoPromote = chess.Knight }, false},
		{"missing rules", func(c *Config) { c.Rules = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    OutputFormat
		wantErr bool
	}{
		{"text", TextFormat, false},
		{"FEN", FENFormat, false},
		{"json", JSONFormat, false},
		{"pgn", TextFormat, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat() = %v, want %v", got, tt.want)
			}
		})
	}
	if JSONFormat.String() != "json" {
		t.Errorf("JSONFormat.String() = %q", JSONFormat.String())
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)
	cfg.SetLog(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != buf {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithOutputFormat(JSONFormat).
		WithCoordinates(false).
		WithHints("e2").
		WithIndent(false).
		WithAutoPromote(chess.Queen).
		WithStrictTurns(false).
		WithStopOnError(false).
		WithStartFEN("8/8/8/8/8/8/8/4K3 w - - 0 1").
		WithWorkers(4).
		WithSuppressDuplicates(true).
		WithDuplicateMatching(true, 50).
		WithOutput(out).
		WithLog(log).
		WithVerbosity(2).
		Build()

	if cfg.Output.Format != JSONFormat {
		t.Errorf("Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Output.Coordinates || cfg.Output.Indent {
		t.Error("Coordinates and Indent should be false")
	}
	if !cfg.Output.ShowHints || cfg.Output.HintSquare != "e2" {
		t.Errorf("hints = %v %q, want true e2", cfg.Output.ShowHints, cfg.Output.HintSquare)
	}
	if cfg.Rules.AutoPromote != chess.Queen || cfg.Rules.StrictTurns || cfg.Rules.StopOnError {
		t.Errorf("rules = %+v", cfg.Rules)
	}
	if cfg.StartFEN == "" || cfg.Workers != 4 || cfg.Verbosity != 2 {
		t.Errorf("StartFEN=%q Workers=%d Verbosity=%d", cfg.StartFEN, cfg.Workers, cfg.Verbosity)
	}
	if !cfg.SuppressDuplicates || !cfg.DuplicateExactPlies || cfg.DuplicateCapacity != 50 {
		t.Errorf("duplicates = %v %v %d", cfg.SuppressDuplicates, cfg.DuplicateExactPlies, cfg.DuplicateCapacity)
	}
	if cfg.OutputFile != out || cfg.LogFile != log {
		t.Error("writers not set")
	}
	testutil.AssertNoError(t, cfg.Validate())
}

package config

import (
	"bytes"
	"errors"
	"testing"

	lcerrors "github.com/lgbarn/luchess-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != TextFormat {
		t.Errorf("Format = %v, want %v", cfg.Format, TextFormat)
	}
	if !cfg.ShowFEN {
		t.Error("ShowFEN should be true by default")
	}
	if cfg.OnlyFailures {
		t.Error("OnlyFailures should be false by default")
	}
	if cfg.ShowSummary {
		t.Error("ShowSummary should be false by default")
	}
}

func TestOutputFormat_String(t *testing.T) {
	tests := []struct {
		format OutputFormat
		want   string
	}{
		{TextFormat, "text"},
		{JSONFormat, "json"},
		{OutputFormat(9), "OutputFormat(9)"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// TestReplayConfig_Defaults verifies ReplayConfig has sensible defaults
func TestReplayConfig_Defaults(t *testing.T) {
	cfg := NewReplayConfig()

	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.BufferSize != 10 {
		t.Errorf("BufferSize = %d, want 10", cfg.BufferSize)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.DBDir != "" {
		t.Errorf("DBDir = %q, want empty", cfg.DBDir)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"many workers", func(c *Config) { c.Replay.Workers = 16 }, false},
		{"zero workers", func(c *Config) { c.Replay.Workers = 0 }, true},
		{"negative buffer", func(c *Config) { c.Replay.BufferSize = -1 }, true},
		{"unknown format", func(c *Config) { c.Output.Format = OutputFormat(7) }, true},
		{"negative duplicate capacity", func(c *Config) { c.Duplicate.MaxCapacity = -1 }, true},
		{"bounded duplicate capacity", func(c *Config) { c.Duplicate.MaxCapacity = 1000 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, lcerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestDuplicateConfig_Defaults verifies DuplicateConfig has sensible defaults
func TestDuplicateConfig_Defaults(t *testing.T) {
	cfg := NewDuplicateConfig()

	if cfg.Suppress {
		t.Error("Suppress should be false by default")
	}
	if cfg.ExactMatch {
		t.Error("ExactMatch should be false by default")
	}
	if cfg.MaxCapacity != 0 {
		t.Errorf("MaxCapacity = %d, want 0", cfg.MaxCapacity)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&buf).WithVerbosity(1).Build()

	cfg.Logf(1, "games: %d\n", 3)
	cfg.Logf(2, "commentary\n")

	if got := buf.String(); got != "games: 3\n" {
		t.Errorf("log = %q, want %q", got, "games: 3\n")
	}

	cfg.SetLogFile(nil)
	cfg.Logf(0, "dropped\n")
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithJSONOutput(true).
		WithFEN(false).
		WithOnlyFailures(true).
		WithSummary(true).
		WithWorkers(4).
		WithStartFEN("8/8/8/8/8/8/8/4K2k w - - 0 1").
		WithDBDir("/tmp/games").
		WithOutput(out).
		WithVerbosity(2).
		WithDuplicateSuppression(true).
		WithExactDuplicates(true).
		Build()

	if cfg.Output.Format != JSONFormat {
		t.Errorf("Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Output.ShowFEN {
		t.Error("ShowFEN should be false")
	}
	if !cfg.Output.OnlyFailures {
		t.Error("OnlyFailures should be true")
	}
	if !cfg.Output.ShowSummary {
		t.Error("ShowSummary should be true")
	}
	if cfg.Replay.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Replay.Workers)
	}
	if cfg.Replay.StartFEN == "" {
		t.Error("StartFEN not set")
	}
	if cfg.Replay.DBDir != "/tmp/games" {
		t.Errorf("DBDir = %q, want /tmp/games", cfg.Replay.DBDir)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if !cfg.Duplicate.Suppress || !cfg.Duplicate.ExactMatch {
		t.Error("duplicate settings not applied")
	}

	cfg = NewConfigBuilder().WithOutputFormat(JSONFormat).WithJSONOutput(false).Build()
	if cfg.Output.Format != TextFormat {
		t.Errorf("Format = %v, want text", cfg.Output.Format)
	}
}

package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestRulesConfig_Defaults verifies the standard draw limits
func TestRulesConfig_Defaults(t *testing.T) {
	cfg := NewRulesConfig()

	if cfg.HalfMoveLimit != 100 {
		t.Errorf("HalfMoveLimit = %d, want 100", cfg.HalfMoveLimit)
	}
	if cfg.RepetitionLimit != 3 {
		t.Errorf("RepetitionLimit = %d, want 3", cfg.RepetitionLimit)
	}
}

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.Archive.Enabled() {
		t.Error("Archive should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// TestConfig_Validate verifies invalid values are rejected
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"zero half-move limit", func(c *Config) { c.Rules.HalfMoveLimit = 0 }, true},
		{"repetition limit one", func(c *Config) { c.Rules.RepetitionLimit = 1 }, true},
		{"five-fold repetition", func(c *Config) { c.Rules.RepetitionLimit = 5 }, false},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
		{"nil rules", func(c *Config) { c.Rules = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_Logf verifies log output is gated on verbosity
func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&buf).WithVerbosity(1).Build()

	cfg.Logf(2, "ply %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Logf above verbosity wrote %q, want nothing", buf.String())
	}

	cfg.Logf(1, "outcome %s", "Draw")
	if got, want := buf.String(), "outcome Draw\n"; got != want {
		t.Errorf("Logf() wrote %q, want %q", got, want)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithVerbosity(2).
		WithHalfMoveLimit(150).
		WithRepetitionLimit(5).
		WithArchiveDir("/tmp/games").
		WithWorkers(4).
		WithOutput(&out).
		Build()

	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.Rules.HalfMoveLimit != 150 {
		t.Errorf("Rules.HalfMoveLimit = %d, want 150", cfg.Rules.HalfMoveLimit)
	}
	if cfg.Rules.RepetitionLimit != 5 {
		t.Errorf("Rules.RepetitionLimit = %d, want 5", cfg.Rules.RepetitionLimit)
	}
	if !cfg.Archive.Enabled() || cfg.Archive.Dir != "/tmp/games" {
		t.Errorf("Archive = %+v, want enabled at /tmp/games", cfg.Archive)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.OutputFile != &out {
		t.Error("OutputFile not set by WithOutput")
	}
}

// TestConfigBuilder_InMemoryArchive verifies the in-memory archive toggle
func TestConfigBuilder_InMemoryArchive(t *testing.T) {
	cfg := NewConfigBuilder().WithInMemoryArchive(true).Build()
	if !cfg.Archive.Enabled() {
		t.Error("Archive.Enabled() = false, want true for in-memory archive")
	}
}

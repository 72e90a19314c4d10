// Package config provides configuration for the chess rules engine and its CLI.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Standard rule limits.
const (
	DefaultHalfMoveLimit   = 100 // fifty full moves by each side
	DefaultRepetitionLimit = 3
)

// RulesConfig holds the draw-rule thresholds.
type RulesConfig struct {
	// HalfMoveLimit is the number of half-moves without capture or pawn
	// move after which the game is drawn.
	HalfMoveLimit uint

	// RepetitionLimit is how many times a position must occur for a draw.
	RepetitionLimit int
}

// NewRulesConfig creates a RulesConfig with the standard limits.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		HalfMoveLimit:   DefaultHalfMoveLimit,
		RepetitionLimit: DefaultRepetitionLimit,
	}
}

// ArchiveConfig holds settings for the game archive.
type ArchiveConfig struct {
	// Dir is the badger directory. Empty disables archiving unless InMemory is set.
	Dir string

	// InMemory keeps the archive in memory only (tests, dry runs).
	InMemory bool
}

// Enabled reports whether an archive should be opened.
func (a *ArchiveConfig) Enabled() bool {
	return a.Dir != "" || a.InMemory
}

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=summary, 2=running commentary of every ply.
	Verbosity int

	Rules   *RulesConfig
	Archive *ArchiveConfig

	// Workers is the number of goroutines used by perft divide.
	Workers int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Rules:      NewRulesConfig(),
		Archive:    &ArchiveConfig{},
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Rules == nil || c.Rules.HalfMoveLimit == 0 {
		return fmt.Errorf("half-move limit must be positive: %w", errors.ErrInvalidConfig)
	}
	if c.Rules.RepetitionLimit < 2 {
		return fmt.Errorf("repetition limit %d: %w", c.Rules.RepetitionLimit, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

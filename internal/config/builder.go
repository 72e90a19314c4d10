package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithHalfMoveLimit sets the fifty-move rule threshold in half-moves.
func (b *ConfigBuilder) WithHalfMoveLimit(limit uint) *ConfigBuilder {
	b.cfg.Rules.HalfMoveLimit = limit
	return b
}

// WithRepetitionLimit sets the repetition count that draws the game.
func (b *ConfigBuilder) WithRepetitionLimit(limit int) *ConfigBuilder {
	b.cfg.Rules.RepetitionLimit = limit
	return b
}

// WithArchiveDir enables the on-disk game archive.
func (b *ConfigBuilder) WithArchiveDir(dir string) *ConfigBuilder {
	b.cfg.Archive.Dir = dir
	return b
}

// WithInMemoryArchive enables an in-memory game archive.
func (b *ConfigBuilder) WithInMemoryArchive(enabled bool) *ConfigBuilder {
	b.cfg.Archive.InMemory = enabled
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

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

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSONFormat
	} else {
		b.cfg.Output.Format = TextFormat
	}
	return b
}

// WithFEN controls whether final positions are printed.
func (b *ConfigBuilder) WithFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowFEN = enabled
	return b
}

// WithOnlyFailures limits output to games that hit an illegal move.
func (b *ConfigBuilder) WithOnlyFailures(enabled bool) *ConfigBuilder {
	b.cfg.Output.OnlyFailures = enabled
	return b
}

// WithSummary controls whether writers append result counts.
func (b *ConfigBuilder) WithSummary(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowSummary = enabled
	return b
}

// WithWorkers sets the number of parallel replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithStartFEN sets the starting position for every game.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Replay.StartFEN = fen
	return b
}

// WithDBDir enables storage of replay records in dir.
func (b *ConfigBuilder) WithDBDir(dir string) *ConfigBuilder {
	b.cfg.Replay.DBDir = dir
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithExactDuplicates requires duplicates to have the same ply count.
func (b *ConfigBuilder) WithExactDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.ExactMatch = enabled
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

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

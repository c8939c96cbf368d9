// Package config provides configuration for luchess.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game count, 2=running commentary

	Output    OutputConfig
	Replay    ReplayConfig
	Duplicate DuplicateConfig

	// File handling
	InputFiles     []string
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Replay:     *NewReplayConfig(),
		Duplicate:  *NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer results are reported to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the writer diagnostics are reported to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration before a run.
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

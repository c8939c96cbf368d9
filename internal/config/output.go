package config

import (
	"fmt"

	"github.com/lgbarn/luchess-go/internal/errors"
)

// OutputFormat selects how replay results are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // One summary line per game
	JSONFormat                     // One JSON document for the whole run
)

var outputFormatNames = map[OutputFormat]string{
	TextFormat: "text",
	JSONFormat: "json",
}

func (f OutputFormat) String() string {
	if name, ok := outputFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies text or JSON output
	Format OutputFormat

	// ShowFEN adds the final position to each text line
	ShowFEN bool

	// OnlyFailures suppresses games that replayed without error
	OnlyFailures bool

	// ShowSummary writes a games/legal/illegal count after the results
	ShowSummary bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:  TextFormat,
		ShowFEN: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if _, ok := outputFormatNames[o.Format]; !ok {
		return fmt.Errorf("unknown output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	return nil
}

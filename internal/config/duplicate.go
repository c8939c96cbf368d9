package config

import (
	"fmt"

	"github.com/lgbarn/luchess-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress drops games ending in a position already seen
	Suppress bool

	// ExactMatch also requires the same number of plies
	ExactMatch bool

	// MaxCapacity bounds the number of remembered positions (0 = unlimited)
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity (%d) must not be negative: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}

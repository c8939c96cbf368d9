package config

import (
	"fmt"

	"github.com/lgbarn/luchess-go/internal/errors"
)

// ReplayConfig holds settings for replaying games.
type ReplayConfig struct {
	// Workers is the number of games replayed in parallel
	Workers int

	// BufferSize is the depth of the work and result queues
	BufferSize int

	// StartFEN is the position every game starts from; empty means the
	// standard initial position
	StartFEN string

	// DBDir is where replay records are stored; empty disables storage
	DBDir string
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    1,
		BufferSize: 10,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) must be at least 1: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}

package config

import "github.com/lgbarn/fenboard-go/internal/errors"

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress drops boards already seen earlier in the input
	Suppress bool

	// Capacity limits the number of remembered positions (0 = unlimited)
	Capacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks the duplicate settings.
func (d *DuplicateConfig) Validate() error {
	if d.Capacity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "duplicate capacity must not be negative, got %d", d.Capacity)
	}
	return nil
}

package config

import "github.com/lgbarn/fenboard-go/internal/errors"

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how each board is rendered
	Format OutputFormat

	// ShowHash appends the position hash to text formats
	ShowHash bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: Dump,
	}
}

// Validate checks that the format is known.
func (o *OutputConfig) Validate() error {
	if o.Format < Dump || o.Format > Draw {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %d", int(o.Format))
	}
	return nil
}

// Package config provides configuration for fenboard.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// OutputFormat selects how parsed boards are written.
type OutputFormat int

const (
	Dump OutputFormat = iota // 8 lines of letters and '-'
	FEN                      // Canonical board field
	JSON                     // One JSON object per input
	Draw                     // Labelled drawing
)

var formatNames = [...]string{"dump", "fen", "json", "draw"}

// String returns the flag spelling of a format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return OutputFormat(i), nil
		}
	}
	return Dump, errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", s)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// CheckOnly validates input without writing boards for valid lines.
	CheckOnly bool

	// Workers is the number of parsing goroutines.
	Workers int

	Output    *OutputConfig
	Duplicate *DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}

package config

import (
	"bytes"
	"errors"
	"os"
	"testing"

	fenerrors "github.com/lgbarn/fenboard-go/internal/errors"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.CheckOnly {
		t.Error("CheckOnly should be false by default")
	}
	if cfg.Output.Format != Dump {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, Dump)
	}
	if cfg.Output.ShowHash {
		t.Error("Output.ShowHash should be false by default")
	}
	if cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be false by default")
	}
	if cfg.Duplicate.Capacity != 0 {
		t.Errorf("Duplicate.Capacity = %d, want 0", cfg.Duplicate.Capacity)
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to stdout")
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config Validate() = %v", err)
	}
}

// TestParseOutputFormat verifies flag spellings
func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"dump", Dump, false},
		{"fen", FEN, false},
		{"FEN", FEN, false},
		{"json", JSON, false},
		{"draw", Draw, false},
		{"pgn", Dump, true},
		{"", Dump, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, fenerrors.ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for f := Dump; f <= Draw; f++ {
		back, err := ParseOutputFormat(f.String())
		if err != nil || back != f {
			t.Errorf("ParseOutputFormat(%v.String()) = %v, %v", f, back, err)
		}
	}
	if got := OutputFormat(99).String(); got != "unknown" {
		t.Errorf("OutputFormat(99).String() = %q, want unknown", got)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"many workers", func(c *Config) { c.Workers = 16 }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative capacity", func(c *Config) { c.Duplicate.Capacity = -1 }, true},
		{"unknown format", func(c *Config) { c.Output.Format = OutputFormat(42) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, fenerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	logBuf := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(logBuf)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != logBuf {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithOutputFormat(JSON).
		WithHash(true).
		WithDuplicateSuppression(true, 1000).
		WithWorkers(4).
		WithCheckOnly(true).
		WithOutput(out).
		WithLog(out).
		WithVerbosity(2).
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want JSON", cfg.Output.Format)
	}
	if !cfg.Output.ShowHash {
		t.Error("ShowHash should be true")
	}
	if !cfg.Duplicate.Suppress || cfg.Duplicate.Capacity != 1000 {
		t.Errorf("Duplicate = %+v, want Suppress with capacity 1000", *cfg.Duplicate)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if !cfg.CheckOnly {
		t.Error("CheckOnly should be true")
	}
	if cfg.OutputFile != out || cfg.LogFile != out {
		t.Error("builder did not set streams")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}

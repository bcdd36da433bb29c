// flags.go - Command-line flag definitions and application to config
package main

import (
	"flag"

	"github.com/lgbarn/fenboard-go/internal/config"
)

var (
	// Input
	inputFile = flag.String("f", "", "Read board fields from file, one per line (- for stdin)")

	// Output
	outputFormat = flag.String("format", "dump", "Output format: dump, fen, json, draw")
	outputFile   = flag.String("o", "", "Write boards to file instead of stdout")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwriting")
	showHash     = flag.Bool("hash", false, "Print the position hash with each board")
	checkOnly    = flag.Bool("check", false, "Validate input only; print nothing for valid boards")

	// Duplicates
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum positions remembered for -D (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("V", false, "Log running commentary, including duplicates")

	// Performance
	workers = flag.Int("j", 1, "Number of parsing goroutines")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary line)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg and validates the result.
func applyFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.ShowHash = *showHash
	cfg.CheckOnly = *checkOnly

	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.Capacity = *duplicateCapacity

	cfg.Workers = *workers

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}

	return cfg.Validate()
}

// fenboard parses FEN board fields and prints the resulting boards.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/fenboard-go/internal/config"
)

const programVersion = "0.1.0"

// Exit statuses.
const (
	exitOK      = 0
	exitInvalid = 1 // at least one input failed to parse
	exitUsage   = 2
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("fenboard version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		os.Exit(exitUsage)
	}

	// os.Exit skips deferred calls, so files are closed explicitly.
	closeLog := setupLogFile(cfg)
	closeOutput := setupOutputFile(cfg)

	inputs, err := collectInputs(flag.Args(), *inputFile, os.Stdin)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		closeOutput()
		closeLog()
		os.Exit(exitUsage)
	}

	stats, err := processInputs(inputs, cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
		closeOutput()
		closeLog()
		os.Exit(exitUsage)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, stats, cfg.Duplicate.Suppress)
	}

	code := stats.exitCode()
	closeOutput()
	closeLog()
	os.Exit(code)
}

// setupLogFile configures the log file based on command-line flags.
// The returned function closes it and is safe to call more than once.
func setupLogFile(cfg *config.Config) func() {
	var (
		file *os.File
		err  error
	)
	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	case *logFile != "":
		file, err = os.Create(*logFile)
	default:
		return func() {}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(exitUsage)
	}
	cfg.SetLog(file)
	return closeOnce(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitUsage)
	}
	cfg.SetOutput(file)
	return closeOnce(file)
}

func closeOnce(c io.Closer) func() {
	closed := false
	return func() {
		if !closed {
			closed = true
			c.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}
}

// reportStatistics prints the final summary line.
func reportStatistics(w io.Writer, stats Stats, duplicates bool) {
	if duplicates {
		fmt.Fprintf(w, "%d board(s) output, %d duplicate(s), %d invalid out of %d.\n",
			stats.Valid-stats.Duplicates, stats.Duplicates, stats.Failed, stats.Total)
		return
	}
	fmt.Fprintf(w, "%d board(s) valid, %d invalid out of %d.\n", stats.Valid, stats.Failed, stats.Total)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenboard [options] [board-fields...]\n\n")
	fmt.Fprintf(os.Stderr, "Parses FEN board fields and prints the boards.\n")
	fmt.Fprintf(os.Stderr, "With no fields and no -f, fields are read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  dump   Eight rows of piece letters, '-' for empty (default)\n")
	fmt.Fprintf(os.Stderr, "  fen    Canonical board field\n")
	fmt.Fprintf(os.Stderr, "  json   One JSON object per input, failures included\n")
	fmt.Fprintf(os.Stderr, "  draw   Labelled board drawing\n")
	fmt.Fprintf(os.Stderr, "\nExit status: 0 all valid, 1 some input invalid, 2 usage or I/O error.\n")
}

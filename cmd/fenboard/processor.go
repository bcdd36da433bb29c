// processor.go - Input collection, parsing and ordered output
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/fen"
	"github.com/lgbarn/fenboard-go/internal/hashing"
	"github.com/lgbarn/fenboard-go/internal/output"
	"github.com/lgbarn/fenboard-go/internal/worker"
)

// inputLine is one board field with the line it came from.
type inputLine struct {
	text string
	line int
}

// Stats counts what happened to the inputs.
type Stats struct {
	Total      int
	Valid      int
	Failed     int
	Duplicates int
}

func (s Stats) exitCode() int {
	if s.Failed > 0 {
		return exitInvalid
	}
	return exitOK
}

// collectInputs gathers board fields from the command line and from file.
// stdin is read when file is "-", or when there are no args and no file.
func collectInputs(args []string, file string, stdin io.Reader) ([]inputLine, error) {
	var inputs []inputLine
	for i, arg := range args {
		inputs = append(inputs, inputLine{text: fen.BoardField(arg), line: i + 1})
	}

	switch {
	case file == "-" || (file == "" && len(args) == 0):
		lines, err := readInputs(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		inputs = append(inputs, lines...)
	case file != "":
		f, err := os.Open(file) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", file)
		}
		defer f.Close()
		lines, err := readInputs(f)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", file)
		}
		inputs = append(inputs, lines...)
	}
	return inputs, nil
}

// readInputs reads one board field per line, skipping blank and '#' lines.
// Full FEN records are reduced to their board field.
func readInputs(r io.Reader) ([]inputLine, error) {
	var inputs []inputLine
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		inputs = append(inputs, inputLine{text: fen.BoardField(text), line: lineNo})
	}
	return inputs, scanner.Err()
}

// parseItem is the per-input work done by a worker.
func parseItem(item worker.WorkItem) worker.ProcessResult {
	board, err := fen.NewBoardFromFEN(item.Input)
	return worker.ProcessResult{
		Input: item.Input,
		Line:  item.Line,
		Index: item.Index,
		Board: board,
		Err:   err,
	}
}

// processInputs parses every input and writes the results in input order.
// The returned error is an output failure; parse failures are counted in Stats.
func processInputs(inputs []inputLine, cfg *config.Config) (Stats, error) {
	ctx := newProcessingContext(cfg, inputs)

	if cfg.Workers <= 1 || len(inputs) <= 1 {
		for i, in := range inputs {
			res := parseItem(worker.WorkItem{Input: in.text, Line: in.line, Index: i})
			if err := ctx.emit(res); err != nil {
				return ctx.stats, err
			}
		}
		return ctx.stats, ctx.writer.Close()
	}

	return processParallel(ctx, inputs)
}

// processParallel parses with a worker pool.
//
// Results arrive out of order; they are held in pending until every earlier
// index has been emitted. Only this goroutine touches the writer and stats.
func processParallel(ctx *processingContext, inputs []inputLine) (Stats, error) {
	bufferSize := len(inputs)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(parseItem,
		worker.WithWorkers(ctx.cfg.Workers),
		worker.WithBufferSize(bufferSize),
	)
	pool.Start()

	go func() {
		for i, in := range inputs {
			pool.Submit(worker.WorkItem{Input: in.text, Line: in.line, Index: i})
		}
		pool.Close()
	}()

	pending := make(map[int]worker.ProcessResult)
	next := 0
	var writeErr error

	for res := range pool.Results() {
		if writeErr != nil {
			continue // drain so the submitter can finish
		}
		pending[res.Index] = res
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := ctx.emit(r); err != nil {
				writeErr = err
				pool.Stop()
				break
			}
		}
	}

	if writeErr != nil {
		return ctx.stats, writeErr
	}
	return ctx.stats, ctx.writer.Close()
}

// processingContext holds the state shared by every emitted result.
type processingContext struct {
	cfg      *config.Config
	inputs   []inputLine
	writer   output.BoardWriter
	detector hashing.DuplicateChecker
	stats    Stats
}

func newProcessingContext(cfg *config.Config, inputs []inputLine) *processingContext {
	ctx := &processingContext{
		cfg:    cfg,
		inputs: inputs,
		writer: output.NewWriter(cfg.OutputFile, cfg),
	}
	if cfg.Duplicate.Suppress {
		if cfg.Workers > 1 {
			ctx.detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.Capacity)
		} else {
			ctx.detector = hashing.NewDuplicateDetector(cfg.Duplicate.Capacity)
		}
	}
	return ctx
}

// emit accounts for one result and writes it unless it is suppressed.
func (ctx *processingContext) emit(res worker.ProcessResult) error {
	ctx.stats.Total++
	rec := output.Record{Input: res.Input, Line: res.Line, Board: res.Board, Err: res.Err}

	if res.Err != nil {
		ctx.stats.Failed++
		fmt.Fprintf(ctx.cfg.LogFile, "line %d: %v\n", res.Line, res.Err)
		if ctx.cfg.CheckOnly {
			return nil
		}
		return ctx.writer.WriteBoard(rec)
	}

	ctx.stats.Valid++
	if ctx.detector != nil {
		if first, dup := ctx.detector.CheckAndAdd(res.Board, res.Index); dup {
			ctx.stats.Duplicates++
			if ctx.cfg.Verbosity > 1 {
				fmt.Fprintf(ctx.cfg.LogFile, "line %d: duplicate of line %d\n", res.Line, ctx.inputs[first].line)
			}
			return nil
		}
	}

	if ctx.cfg.CheckOnly {
		return nil
	}
	return ctx.writer.WriteBoard(rec)
}

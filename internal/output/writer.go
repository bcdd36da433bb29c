// Package output writes parsed boards in the supported formats.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/fen"
	"github.com/lgbarn/fenboard-go/internal/hashing"
	"github.com/lgbarn/fenboard-go/internal/interop"
)

// Record is one processed input line.
type Record struct {
	Input string
	Line  int // 1-based source line or argument position
	Board chess.Board
	Err   error
}

// BoardWriter is the interface for writing boards to output.
type BoardWriter interface {
	// WriteBoard writes a single record to the output.
	WriteBoard(rec Record) error

	// Close flushes pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.Config) BoardWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output.Format, cfg.Output.ShowHash)
}

// TextWriter writes boards as dumps, FEN fields or drawings.
// Records with an error are skipped; the caller reports them.
type TextWriter struct {
	w        io.Writer
	format   config.OutputFormat
	showHash bool
	written  int
}

// NewTextWriter creates a writer for the dump, fen and draw formats.
func NewTextWriter(w io.Writer, format config.OutputFormat, showHash bool) *TextWriter {
	return &TextWriter{w: w, format: format, showHash: showHash}
}

// WriteBoard writes one board.
func (tw *TextWriter) WriteBoard(rec Record) error {
	if rec.Err != nil {
		return nil
	}

	switch tw.format {
	case config.FEN:
		return tw.writeFEN(rec.Board)
	case config.Draw:
		return tw.writeBlock(rec.Board, interop.Draw)
	default:
		return tw.writeBlock(rec.Board, func(b chess.Board) (string, error) {
			return b.String(), nil
		})
	}
}

// writeFEN writes one board field per line.
func (tw *TextWriter) writeFEN(board chess.Board) error {
	tw.written++
	if tw.showHash {
		_, err := fmt.Fprintf(tw.w, "%s %016x\n", fen.BoardToFEN(board), hashing.Hash(board))
		return err
	}
	_, err := fmt.Fprintln(tw.w, fen.BoardToFEN(board))
	return err
}

// writeBlock writes a multi-line rendering, separating boards with a blank line.
func (tw *TextWriter) writeBlock(board chess.Board, render func(chess.Board) (string, error)) error {
	text, err := render(board)
	if err != nil {
		return err
	}
	if tw.written > 0 {
		if _, err := io.WriteString(tw.w, "\n"); err != nil {
			return err
		}
	}
	tw.written++
	if tw.showHash {
		if _, err := fmt.Fprintf(tw.w, "hash %016x\n", hashing.Hash(board)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(tw.w, text)
	return err
}

// Close is a no-op; text is written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

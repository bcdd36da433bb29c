// Package errors provides sentinel errors and error types for fenboard.
// Each FEN failure is a distinct sentinel so callers can branch with
// errors.Is(); FENError adds the row and column where parsing stopped.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFEN is matched by every FEN board-field parse failure.
var ErrInvalidFEN = errors.New("invalid FEN board")

// Sentinel errors for FEN board-field parsing.
var (
	// ErrIncorrectAmountOfSlash indicates the field did not split into 8 rows.
	ErrIncorrectAmountOfSlash error = &fenKind{"incorrect amount of slashes"}

	// ErrIncorrectAmountOfTiles indicates a row overflowed or the total was not 64.
	ErrIncorrectAmountOfTiles error = &fenKind{"incorrect amount of tiles"}

	// ErrUnknownCharacter indicates a character that is neither 1-9 nor a piece letter.
	ErrUnknownCharacter error = &fenKind{"unknown character"}
)

// ErrInvalidConfig indicates invalid configuration values.
var ErrInvalidConfig = errors.New("invalid configuration")

// fenKind is a sentinel that also matches ErrInvalidFEN.
type fenKind struct {
	msg string
}

func (k *fenKind) Error() string { return k.msg }

// Is lets errors.Is(err, ErrInvalidFEN) match every specific FEN sentinel.
func (k *fenKind) Is(target error) bool {
	return target == ErrInvalidFEN
}

// FENError records where in a board field parsing failed.
// Row and Column are 1-based; zero means not applicable.
type FENError struct {
	Err    error  // One of the FEN sentinels
	Input  string // The board field being parsed
	Row    int    // Row number within the field
	Column int    // Character position within the row
	Char   rune   // The offending character, if any
}

// Error returns a formatted error message with location context.
func (e *FENError) Error() string {
	var parts []string

	if e.Row > 0 {
		loc := fmt.Sprintf("row %d", e.Row)
		if e.Column > 0 {
			loc += fmt.Sprintf(", column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Char != 0 {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Char))
	}

	msg := "invalid FEN board"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if len(parts) > 0 {
		msg = fmt.Sprintf("%s: %s", strings.Join(parts, ": "), msg)
	}
	if e.Input != "" {
		msg = fmt.Sprintf("%q: %s", e.Input, msg)
	}
	return msg
}

// Unwrap returns the underlying sentinel.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

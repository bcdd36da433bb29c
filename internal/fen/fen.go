// Package fen converts between chess boards and the piece-placement field
// of Forsyth-Edwards Notation.
package fen

import (
	"strings"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
)

// InitialBoardFEN is the board field of the standard starting position.
const InitialBoardFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// NewBoardFromFEN parses the board field of a FEN string. Rows run from the
// first FEN row (rank 8) to the last; digits 1-9 skip that many empty slots.
// On failure the zero Board is returned with a *errors.FENError wrapping one
// of ErrIncorrectAmountOfSlash, ErrIncorrectAmountOfTiles or ErrUnknownCharacter.
func NewBoardFromFEN(field string) (chess.Board, error) {
	rows := strings.Split(field, "/")
	if len(rows) != chess.BoardSize {
		return chess.Board{}, &errors.FENError{Err: errors.ErrIncorrectAmountOfSlash, Input: field}
	}

	board := chess.NewBoard()
	i := 0
	for r, row := range rows {
		if err := parseRow(&board, &i, r, row); err != nil {
			err.Input = field
			return chess.Board{}, err
		}
	}

	if i != chess.NumSlots {
		return chess.Board{}, &errors.FENError{Err: errors.ErrIncorrectAmountOfTiles, Input: field}
	}
	return board, nil
}

// parseRow fills one row starting at cursor *i, leaving *i at the start of
// the next row.
func parseRow(board *chess.Board, i *int, r int, row string) *errors.FENError {
	rowEnd := r*chess.BoardSize + chess.BoardSize
	col := 0

	for _, c := range row {
		col++
		if *i >= rowEnd {
			return &errors.FENError{Err: errors.ErrIncorrectAmountOfTiles, Row: r + 1, Column: col, Char: c}
		}

		if c >= '1' && c <= '9' {
			*i += int(c - '0')
			continue
		}

		piece, ok := chess.PieceFromChar(c)
		if !ok {
			return &errors.FENError{Err: errors.ErrUnknownCharacter, Row: r + 1, Column: col, Char: c}
		}
		board.SetAt(*i, piece)
		*i++
	}

	if *i != rowEnd {
		return &errors.FENError{Err: errors.ErrIncorrectAmountOfTiles, Row: r + 1}
	}
	return nil
}

// NewInitialBoard returns the standard starting position.
func NewInitialBoard() chess.Board {
	board, _ := NewBoardFromFEN(InitialBoardFEN)
	return board
}

// BoardField returns the piece-placement field of a full FEN record.
// A bare board field is returned unchanged.
func BoardField(record string) string {
	fields := strings.Fields(record)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// BoardToFEN converts a board to its canonical FEN board field,
// compressing each run of empty slots into a single digit.
func BoardToFEN(board chess.Board) string {
	var sb strings.Builder
	emptyCount := 0

	for i := 0; i < chess.NumSlots; i++ {
		if i%chess.BoardSize == 0 && i != 0 {
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte('/')
		}
		piece := board.At(i)
		if piece == chess.NoPiece {
			emptyCount++
			continue
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
			emptyCount = 0
		}
		sb.WriteRune(piece.Char())
	}
	if emptyCount > 0 {
		sb.WriteByte(byte('0' + emptyCount))
	}
	return sb.String()
}

// Normalize parses a board field and re-encodes it canonically,
// e.g. "44" rows become "8".
func Normalize(field string) (string, error) {
	board, err := NewBoardFromFEN(field)
	if err != nil {
		return "", err
	}
	return BoardToFEN(board), nil
}

// DumpToFEN converts the output of chess.Board.String back to a board
// field by compressing '-' runs into digits and joining lines with '/'.
func DumpToFEN(dump string) (string, error) {
	lines := strings.Split(dump, "\n")
	if len(lines) != chess.BoardSize {
		return "", &errors.FENError{Err: errors.ErrIncorrectAmountOfSlash, Input: dump}
	}

	rows := make([]string, 0, len(lines))
	for r, line := range lines {
		var sb strings.Builder
		emptyCount := 0
		col := 0
		for _, c := range line {
			col++
			if c == '-' {
				emptyCount++
				continue
			}
			if _, ok := chess.PieceFromChar(c); !ok {
				return "", &errors.FENError{Err: errors.ErrUnknownCharacter, Input: dump, Row: r + 1, Column: col, Char: c}
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(c)
		}
		if col != chess.BoardSize {
			return "", &errors.FENError{Err: errors.ErrIncorrectAmountOfTiles, Input: dump, Row: r + 1}
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "/"), nil
}

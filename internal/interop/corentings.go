// Package interop converts boards to and from github.com/corentings/chess/v2.
// Both sides agree on the FEN board field, so conversion goes through it.
package interop

import (
	corchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/fen"
)

// ToChessBoard converts a board to a corentings board.
func ToChessBoard(b chess.Board) (*corchess.Board, error) {
	cb := &corchess.Board{}
	if err := cb.UnmarshalText([]byte(fen.BoardToFEN(b))); err != nil {
		return nil, errors.Wrap(err, "corentings board")
	}
	return cb, nil
}

// FromChessBoard converts a corentings board back to a board.
func FromChessBoard(cb *corchess.Board) (chess.Board, error) {
	if cb == nil {
		return chess.Board{}, nil
	}
	return fen.NewBoardFromFEN(cb.String())
}

// Draw renders the board with rank and file labels.
func Draw(b chess.Board) (string, error) {
	cb, err := ToChessBoard(b)
	if err != nil {
		return "", err
	}
	return cb.Draw(), nil
}

package chess

import "strings"

// Constants for board dimensions.
const (
	BoardSize = 8
	NumSlots  = BoardSize * BoardSize
)

// Board holds the 64 slots of a chess board in row-major order.
// Slot y*8+x; row 0 is the first row of a FEN board field (rank 8).
// Board is a plain value: copying it copies the position.
type Board struct {
	tiles [NumSlots]Piece
}

// NewBoard creates an empty board. It is identical to the zero value.
func NewBoard() Board {
	return Board{}
}

// Index converts x and y coordinates to a slot index.
// It panics if either coordinate is outside [0, 7].
func Index(x, y int) int {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		panic("chess: x and y must be between 0 and 7")
	}
	return y*BoardSize + x
}

// Get returns the piece at (x, y) and whether the slot is occupied.
func (b *Board) Get(x, y int) (Piece, bool) {
	p := b.tiles[Index(x, y)]
	return p, p != NoPiece
}

// Set places a piece at (x, y), replacing any previous occupant.
func (b *Board) Set(x, y int, piece Piece) {
	b.tiles[Index(x, y)] = piece
}

// Remove clears the slot at (x, y).
func (b *Board) Remove(x, y int) {
	b.tiles[Index(x, y)] = NoPiece
}

// At returns the piece in slot i, which must be in [0, 63].
func (b *Board) At(i int) Piece {
	if i < 0 || i >= NumSlots {
		panic("chess: slot index must be between 0 and 63")
	}
	return b.tiles[i]
}

// SetAt places a piece in slot i, which must be in [0, 63].
func (b *Board) SetAt(i int, piece Piece) {
	if i < 0 || i >= NumSlots {
		panic("chess: slot index must be between 0 and 63")
	}
	b.tiles[i] = piece
}

// Count returns the number of occupied slots.
func (b *Board) Count() int {
	n := 0
	for _, p := range b.tiles {
		if p != NoPiece {
			n++
		}
	}
	return n
}

// Equal reports whether both boards hold the same piece in every slot.
func (b Board) Equal(other Board) bool {
	for i := range b.tiles {
		if b.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// String returns eight newline-separated rows of eight characters, using
// the FEN letter for occupied slots and '-' for empty ones.
// Empty runs are not compressed.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(NumSlots + BoardSize - 1)
	for i, p := range b.tiles {
		if i%BoardSize == 0 && i != 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(p.Char())
	}
	return sb.String()
}

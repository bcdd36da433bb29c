// Package chess provides the core board and piece types.
package chess

import "unicode"

// Colour represents the colour of a piece.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type without colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the lowercase name of a kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Letter returns the uppercase FEN letter of a kind.
func (k Kind) Letter() rune {
	letters := []rune{'-', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter returns the kind for an uppercase or lowercase FEN letter.
func KindFromLetter(c rune) Kind {
	if c > unicode.MaxASCII {
		return NoKind
	}
	switch unicode.ToUpper(c) {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	default:
		return NoKind
	}
}

// Piece is a coloured piece. The zero value is NoPiece, an empty slot.
type Piece uint8

// NoPiece marks an empty slot.
const NoPiece Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// CharConverter is implemented by values with a single-character FEN form.
type CharConverter interface {
	Char() rune
}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind <= NoKind || kind >= NumKinds {
		return NoPiece
	}
	return Piece(int(kind)<<PieceShift | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece type.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Colour extracts the colour. It is meaningless for NoPiece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Char returns the FEN letter for the piece: uppercase for White,
// lowercase for Black, '-' for NoPiece.
func (p Piece) Char() rune {
	if p == NoPiece {
		return '-'
	}
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		return unicode.ToLower(letter)
	}
	return letter
}

// String returns a readable name such as "white knight".
func (p Piece) String() string {
	if p == NoPiece {
		return "empty"
	}
	if p.Colour() == White {
		return "white " + p.Kind().String()
	}
	return "black " + p.Kind().String()
}

// PieceFromChar converts a FEN piece letter to a piece.
// It returns false for anything other than PNBRQK in either case.
func PieceFromChar(c rune) (Piece, bool) {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return NoPiece, false
	}
	if unicode.IsLower(c) {
		return MakePiece(Black, kind), true
	}
	return MakePiece(White, kind), true
}

package interop

import (
	"strings"
	"testing"

	corchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/fen"
	"github.com/lgbarn/fenboard-go/internal/testutil"
)

var boards = []string{
	fen.InitialBoardFEN,
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
	"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R",
	"8/8/8/8/8/8/8/4K3",
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
	"6k1/5ppp/8/8/8/8/5PPP/3R2K1",
}

func TestToChessBoard(t *testing.T) {
	for _, field := range boards {
		t.Run(field, func(t *testing.T) {
			b, err := fen.NewBoardFromFEN(field)
			testutil.AssertNoError(t, err)

			cb, err := ToChessBoard(b)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, cb.String(), field)

			back, err := FromChessBoard(cb)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, back, b)
		})
	}
}

func TestToChessBoard_Orientation(t *testing.T) {
	cb, err := ToChessBoard(fen.NewInitialBoard())
	testutil.AssertNoError(t, err)

	// Slot 0 is a8 and slot 63 is h1.
	testutil.AssertEqual(t, cb.Piece(corchess.A8), corchess.BlackRook)
	testutil.AssertEqual(t, cb.Piece(corchess.H1), corchess.WhiteRook)
	testutil.AssertEqual(t, cb.Piece(corchess.E1), corchess.WhiteKing)
	testutil.AssertEqual(t, cb.Piece(corchess.E8), corchess.BlackKing)
}

// TestParserAgreesWithCorentings checks acceptance against an independent parser.
func TestParserAgreesWithCorentings(t *testing.T) {
	inputs := append([]string{
		"7/8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/7",
		"x7/8/8/8/8/8/8/8",
		"08/8/8/8/8/8/8/8",
		"pppppppp1/8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/RNBQKBNRR",
		"44/8/8/8/8/8/8/8",
		"rnbqkbnr",
		"8/8/8/8/8/8/8/8/8",
	}, boards...)

	for _, field := range inputs {
		t.Run(field, func(t *testing.T) {
			ours, ourErr := fen.NewBoardFromFEN(field)

			var cb corchess.Board
			theirErr := cb.UnmarshalText([]byte(field))

			if (ourErr == nil) != (theirErr == nil) {
				t.Fatalf("acceptance differs: ours = %v, corentings = %v", ourErr, theirErr)
			}
			if ourErr != nil {
				return
			}
			testutil.AssertEqual(t, fen.BoardToFEN(ours), cb.String())
		})
	}
}

func TestFromChessBoard_Nil(t *testing.T) {
	b, err := FromChessBoard(nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, b, chess.NewBoard())
}

func TestDraw(t *testing.T) {
	s, err := Draw(fen.NewInitialBoard())
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, s, "A B C D E F G H")

	lines := strings.Split(strings.TrimSpace(s), "\n")
	testutil.AssertEqual(t, len(lines), 9, "header plus eight ranks")
}

package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/luchess-go/internal/chess"
)

// MustBoard builds a board from eight rank diagrams, rank 8 first, using
// FEN piece letters and '.' for an empty square:
//
//	b := testutil.MustBoard(t, chess.White,
//		"....k...",
//		"........",
//		...
//		"....K..R")
//
// No castling or double-step flags are set. It calls t.Fatal on a
// malformed diagram.
func MustBoard(t *testing.T, toMove chess.Colour, ranks ...string) *chess.Board {
	t.Helper()
	if len(ranks) != chess.BoardSize {
		t.Fatalf("MustBoard: got %d ranks; want %d", len(ranks), chess.BoardSize)
	}

	b := chess.NewBoard()
	b.ToMove = toMove
	for i, rank := range ranks {
		if len(rank) != chess.BoardSize {
			t.Fatalf("MustBoard: rank %d is %q; want 8 squares", chess.BoardSize-i, rank)
		}
		row := chess.MaxRow - i
		for col := 0; col < chess.BoardSize; col++ {
			c := rank[col]
			if c == '.' {
				continue
			}
			pt := chess.PieceTypeFromLetter(c)
			if pt == chess.NoPieceType {
				t.Fatalf("MustBoard: bad piece letter %q in rank %d", c, chess.BoardSize-i)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			b.Put(chess.Pos(col, row), chess.Occupied(chess.Piece{Type: pt, Colour: colour}))
		}
	}
	return b
}

// MustGrantCastling sets the castling right for each corner given.
func MustGrantCastling(t *testing.T, b *chess.Board, corners ...chess.Position) {
	t.Helper()
	for _, c := range corners {
		if err := b.Castling.Set(c, true); err != nil {
			t.Fatalf("MustGrantCastling(%v): %v", c, err)
		}
	}
}

// AssertState compares two board snapshots and reports a square-by-square
// diff on mismatch.
func AssertState(t *testing.T, got, want chess.BoardState, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(chess.Square{})); diff != "" {
		fail(t, msgAndArgs, "board state mismatch (-want +got):\n%s", diff)
	}
}

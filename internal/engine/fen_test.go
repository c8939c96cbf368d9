package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/luchess-go/internal/chess"
	lcerrors "github.com/lgbarn/luchess-go/internal/errors"
	"github.com/lgbarn/luchess-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.At(chess.Pos(4, 0)).Is(chess.W(chess.King)) &&
					b.At(chess.Pos(4, 7)).Is(chess.B(chess.King)) &&
					b.At(chess.Pos(4, 1)).Is(chess.W(chess.Pawn)) &&
					b.At(chess.Pos(4, 6)).Is(chess.B(chess.Pawn)) &&
					b.ToMove == chess.White &&
					b.Castling.Bits() == 0x0F
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				flagged, _ := b.DoubleStep.Get(chess.Pos(4, 1))
				return b.At(chess.Pos(4, 3)).Is(chess.W(chess.Pawn)) &&
					b.At(chess.Pos(4, 1)).IsEmpty() &&
					b.ToMove == chess.Black &&
					flagged
			},
		},
		{
			name: "black en passant target",
			fen:  "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			checkFn: func(b *chess.Board) bool {
				flagged, _ := b.DoubleStep.Get(chess.Pos(4, 6))
				return flagged && b.DoubleStep.Bits() == 1<<(8+4) && b.MoveNumber == 3
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Castling.Bits() == 0
			},
		},
		{
			name: "placement only",
			fen:  "8/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board) bool {
				return b.ToMove == chess.White && b.MoveNumber == 1 && b.HalfmoveClock == 0
			},
		},
		{
			name: "clocks",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 37 52",
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock == 37 && b.MoveNumber == 52
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) board check failed", tt.fen)
			}
		})
	}
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"too few ranks", "8/8/8 w - - 0 1"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"long rank", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"digits overflow", "44p/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "8/8/8/8/8/8/8/4K3 w KX - 0 1"},
		{"bad en passant square", "8/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1"},
		{"en passant for side to move", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e3 0 1"},
		{"en passant without pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"bad halfmove clock", "8/8/8/8/8/8/8/4K3 w - - x 1"},
		{"zero move number", "8/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"extra field", "8/8/8/8/8/8/8/4K3 w - - 0 1 extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			if !errors.Is(err, lcerrors.ErrInvalidFEN) {
				t.Errorf("NewBoardFromFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestToFEN_RoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			board := mustFEN(t, fen)
			testutil.AssertEqual(t, ToFEN(board), fen)
		})
	}
}

func TestNewInitialBoard(t *testing.T) {
	testutil.AssertEqual(t, ToFEN(NewInitialBoard()), InitialFEN)
	testutil.AssertState(t, mustFEN(t, InitialFEN).SaveState(), NewInitialBoard().SaveState())
}

func TestToFEN_AfterMoves(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   []string
		wantFEN string
	}{
		{
			name:    "1.e4",
			fen:     InitialFEN,
			moves:   []string{"e2e4"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "1.Nf3",
			fen:     InitialFEN,
			moves:   []string{"g1f3"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name:    "1.e4 c5 clears e3",
			fen:     InitialFEN,
			moves:   []string{"e2e4", "c7c5"},
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		},
		{
			name:    "en passant from FEN",
			fen:     "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			moves:   []string{"f5e6"},
			wantFEN: "rnbqkbnr/pppp1ppp/4P3/8/8/8/PPPPP1PP/RNBQKBNR b KQkq - 0 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			playAll(t, board, tt.moves...)
			testutil.AssertEqual(t, ToFEN(board), tt.wantFEN)
		})
	}
}

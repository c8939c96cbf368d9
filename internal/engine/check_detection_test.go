package engine

import (
	"testing"

	"github.com/lgbarn/luchess-go/internal/chess"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial position", InitialFEN, chess.White, false},
		{"queen on diagonal", "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3", chess.White, true},
		{"knight", "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"white pawn", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"black pawn", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"pawn in front does not attack", "4k3/4P3/8/8/8/8/8/4K3 b - - 0 1", chess.Black, false},
		{"rook blocked", "4k3/4p3/8/8/8/8/8/4R1K1 b - - 0 1", chess.Black, false},
		{"rook open file", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", chess.Black, true},
		{"bishop", "4k3/8/8/8/B7/8/8/6K1 b - - 0 1", chess.Black, true},
		{"bishop blocked", "4k3/8/2n5/8/B7/8/8/6K1 b - - 0 1", chess.Black, false},
		{"queen on rank", "Q3k3/8/8/8/8/8/8/6K1 b - - 0 1", chess.Black, true},
		{"queen behind own pawn", "4k3/8/8/8/8/8/4P3/4Q1K1 b - - 0 1", chess.Black, false},
		{"rook on diagonal does not attack", "4k3/8/8/8/R7/8/8/6K1 b - - 0 1", chess.Black, false},
		{"kings two apart", "8/8/8/8/8/3k4/8/3K4 w - - 0 1", chess.White, false},
		{"kings touching", "8/8/8/8/8/8/3k4/3K4 w - - 0 1", chess.White, true},
		{"no king", "8/8/8/8/8/8/8/8 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			if got := IsInCheck(b, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v; want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsSquareAttacked(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		pos  chess.Position
		by   chess.Colour
		want bool
	}{
		{chess.Pos(4, 2), chess.White, true},  // e3 by d2/f2 pawns
		{chess.Pos(5, 2), chess.White, true},  // f3 by g1 knight
		{chess.Pos(4, 3), chess.White, false}, // e4
		{chess.Pos(4, 5), chess.Black, true},  // e6
		{chess.Pos(4, 4), chess.Black, false}, // e5
		{chess.Pos(4, 0), chess.White, true},  // e1 by d1 queen
		{chess.Pos(8, 0), chess.White, false},
	}
	for _, tt := range tests {
		if got := IsSquareAttacked(b, tt.pos, tt.by); got != tt.want {
			t.Errorf("IsSquareAttacked(%v, %v) = %v; want %v", tt.pos, tt.by, got, tt.want)
		}
	}
}

package engine

import (
	"testing"

	"github.com/lgbarn/luchess-go/internal/chess"
	"github.com/lgbarn/luchess-go/internal/testutil"
)

func TestIsStraightOrDiagonal(t *testing.T) {
	tests := []struct {
		name   string
		target chess.Position
		want   bool
	}{
		{"same square", chess.Pos(3, 3), false},
		{"file", chess.Pos(3, 7), true},
		{"rank", chess.Pos(0, 3), true},
		{"diagonal", chess.Pos(6, 6), true},
		{"anti-diagonal", chess.Pos(0, 6), true},
		{"knight jump", chess.Pos(4, 5), false},
		{"skewed", chess.Pos(6, 4), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStraightOrDiagonal(chess.Pos(3, 3), tt.target); got != tt.want {
				t.Errorf("IsStraightOrDiagonal((3,3), %v) = %v; want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestLineIsBlocked(t *testing.T) {
	b := testutil.MustBoard(t, chess.White,
		"........",
		"........",
		"........",
		"........",
		"...p....",
		"........",
		".P......",
		"R.B.....",
	)

	tests := []struct {
		name           string
		origin, target chess.Position
		want           bool
	}{
		{"adjacent square never blocked", chess.Pos(0, 0), chess.Pos(1, 0), false},
		{"occupied target ignored", chess.Pos(0, 0), chess.Pos(2, 0), false},
		{"piece between on rank", chess.Pos(0, 0), chess.Pos(3, 0), true},
		{"clear file", chess.Pos(0, 0), chess.Pos(0, 7), false},
		{"piece between on diagonal", chess.Pos(2, 0), chess.Pos(0, 2), true},
		{"clear diagonal to occupied target", chess.Pos(2, 0), chess.Pos(3, 1), false},
		{"long diagonal through d4", chess.Pos(7, 7), chess.Pos(0, 0), true},
		{"reverse direction", chess.Pos(3, 7), chess.Pos(3, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineIsBlocked(b, tt.origin, tt.target); got != tt.want {
				t.Errorf("LineIsBlocked(%v, %v) = %v; want %v", tt.origin, tt.target, got, tt.want)
			}
		})
	}
}

func TestLineIsBlocked_PanicsOnBadShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LineIsBlocked did not panic on a knight-shaped line")
		}
	}()
	LineIsBlocked(chess.NewBoard(), chess.Pos(1, 0), chess.Pos(2, 2))
}

package engine

import (
	"fmt"

	"github.com/lgbarn/luchess-go/internal/chess"
)

// IsStraightOrDiagonal reports whether target lies on the same file, rank
// or diagonal as origin, and is a different square.
func IsStraightOrDiagonal(origin, target chess.Position) bool {
	d := target.Sub(origin)
	if d.Column == 0 && d.Row == 0 {
		return false
	}
	return d.Column == 0 || d.Row == 0 || abs(d.Column) == abs(d.Row)
}

// LineIsBlocked reports whether any square strictly between origin and
// target is occupied. The target square itself is never examined.
//
// The caller must have checked IsStraightOrDiagonal; any other shape is a
// programming error and panics.
func LineIsBlocked(board *chess.Board, origin, target chess.Position) bool {
	if !IsStraightOrDiagonal(origin, target) {
		panic(fmt.Sprintf("engine: %v to %v is not a straight or diagonal line", origin, target))
	}

	d := target.Sub(origin)
	unit := chess.Pos(sign(d.Column), sign(d.Row))

	for p := origin.Add(unit); p != target; p = p.Add(unit) {
		if !board.At(p).IsEmpty() {
			return true
		}
	}
	return false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

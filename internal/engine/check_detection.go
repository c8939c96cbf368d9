package engine

import "github.com/lgbarn/luchess-go/internal/chess"

// IsInCheck reports whether the king of the given colour is attacked.
// A board without that king is never in check.
//
// This is informational only: Resolve does not reject moves that leave
// the mover's king attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingAt, ok := board.Find(chess.Piece{Type: chess.King, Colour: colour})
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingAt, colour.Opposite())
}

// IsSquareAttacked reports whether any piece of colour by could capture on
// pos, using the same movement rules as Resolve. En passant and castling
// never attack.
func IsSquareAttacked(board *chess.Board, pos chess.Position, by chess.Colour) bool {
	if !pos.IsValid() {
		return false
	}

	for row := chess.MinRow; row <= chess.MaxRow; row++ {
		for col := chess.MinColumn; col <= chess.MaxColumn; col++ {
			from := chess.Pos(col, row)
			piece, ok := board.At(from).Piece()
			if !ok || piece.Colour != by || from == pos {
				continue
			}
			if attacks(board, piece, from, pos) {
				return true
			}
		}
	}
	return false
}

// attacks reports whether piece standing on from could capture on to.
func attacks(board *chess.Board, piece chess.Piece, from, to chess.Position) bool {
	d := to.Sub(from)
	dc, dr := abs(d.Column), abs(d.Row)

	switch piece.Type {
	case chess.Pawn:
		return d.Row == piece.Colour.Direction() && dc == 1
	case chess.Knight:
		return dc*dr == 2
	case chess.King:
		return max(dc, dr) == 1
	case chess.Bishop:
		return dc == dr && !LineIsBlocked(board, from, to)
	case chess.Rook:
		return (dc == 0 || dr == 0) && !LineIsBlocked(board, from, to)
	case chess.Queen:
		return IsStraightOrDiagonal(from, to) && !LineIsBlocked(board, from, to)
	}
	return false
}

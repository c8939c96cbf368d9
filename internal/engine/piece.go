package engine

import (
	"github.com/lgbarn/luchess-go/internal/chess"
)

func resolveKnight(board *chess.Board, move chess.Move, piece chess.Piece) Outcome {
	d := move.Delta()
	dc, dr := abs(d.Column), abs(d.Row)
	if (dc == 1 && dr == 2) || (dc == 2 && dr == 1) {
		return accept(board, move, piece, KindStep)
	}
	return reject(move, ReasonIllegalShape)
}

func resolveBishop(board *chess.Board, move chess.Move, piece chess.Piece) Outcome {
	d := move.Delta()
	if d.Column == 0 || abs(d.Column) != abs(d.Row) {
		return reject(move, ReasonIllegalShape)
	}
	return slide(board, move, piece)
}

func resolveRook(board *chess.Board, move chess.Move, piece chess.Piece) Outcome {
	d := move.Delta()
	if (d.Column == 0) == (d.Row == 0) {
		return reject(move, ReasonIllegalShape)
	}
	return slide(board, move, piece)
}

func resolveQueen(board *chess.Board, move chess.Move, piece chess.Piece) Outcome {
	if !IsStraightOrDiagonal(move.Origin, move.Target) {
		return reject(move, ReasonIllegalShape)
	}
	return slide(board, move, piece)
}

// resolveKing allows one step in any direction, or a castle written as the
// king moving two squares along its starting row.
func resolveKing(board *chess.Board, move chess.Move, piece chess.Piece) Outcome {
	d := move.Delta()
	dc, dr := abs(d.Column), abs(d.Row)
	if dc <= 1 && dr <= 1 {
		return accept(board, move, piece, KindStep)
	}
	if dr == 0 && dc == 2 && move.Origin == chess.KingStart(piece.Colour) {
		return resolveCastle(board, move, piece, sign(d.Column))
	}
	return reject(move, ReasonIllegalShape)
}

// slide accepts a line move whose intermediate squares are empty.
func slide(board *chess.Board, move chess.Move, piece chess.Piece) Outcome {
	if LineIsBlocked(board, move.Origin, move.Target) {
		return reject(move, ReasonBlocked)
	}
	return accept(board, move, piece, KindStep)
}

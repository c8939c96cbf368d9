package engine

import (
	"github.com/lgbarn/luchess-go/internal/chess"
)

// resolveCastle handles a king on its starting square castling towards
// side (+1 for the h-file rook, -1 for the a-file rook). The corner must
// still hold its castling right and a rook of the king's colour, and every
// square between king and rook must be empty.
//
// Passing through or out of check is not tested.
func resolveCastle(board *chess.Board, move chess.Move, king chess.Piece, side int) Outcome {
	start := chess.KingStart(king.Colour)
	corner := castlingCorner(king.Colour, side)

	allowed, err := board.Castling.Get(corner)
	if err != nil || !allowed {
		return reject(move, ReasonNoCastlingRight)
	}
	if !board.At(corner).Is(chess.Piece{Type: chess.Rook, Colour: king.Colour}) {
		return reject(move, ReasonNoCastlingRight)
	}
	if LineIsBlocked(board, start, corner) {
		return reject(move, ReasonBlocked)
	}

	to := start.Add(chess.Pos(2*side, 0))
	return Outcome{
		Legal:          true,
		Kind:           KindCastle,
		Move:           move,
		Piece:          king,
		From:           start,
		To:             to,
		CapturedAt:     to,
		RookFrom:       corner,
		RookTo:         start.Add(chess.Pos(side, 0)),
		RevokeCastling: rowRights(board, king.Colour.BackRow()),
	}
}

// resolveRookCastle handles a rook moved onto its own king, which requests
// castling on that rook's side. Anything else is friendly fire.
func resolveRookCastle(board *chess.Board, move chess.Move) Outcome {
	rook, _ := board.At(move.Origin).Piece()
	king := chess.Piece{Type: chess.King, Colour: rook.Colour}
	start := chess.KingStart(rook.Colour)

	if move.Target != start || !chess.IsCorner(move.Origin) || move.Origin.Row != start.Row {
		return reject(move, ReasonFriendlyTarget)
	}
	if move.Promotion != chess.NoPieceType {
		return reject(move, ReasonBadPromotion)
	}
	return resolveCastle(board, move, king, sign(move.Origin.Column-start.Column))
}

func castlingCorner(c chess.Colour, side int) chess.Position {
	if side > 0 {
		return chess.Pos(chess.MaxColumn, c.BackRow())
	}
	return chess.Pos(chess.MinColumn, c.BackRow())
}

// rowRights returns the corners on row that still hold a castling right.
func rowRights(board *chess.Board, row int) []chess.Position {
	var corners []chess.Position
	for _, col := range [...]int{chess.MinColumn, chess.MaxColumn} {
		p := chess.Pos(col, row)
		if set, _ := board.Castling.Get(p); set {
			corners = append(corners, p)
		}
	}
	return corners
}

// castlingRevocations lists the rights a non-castling move gives up: a king
// move gives up both corners of its own back row, a rook leaving a corner
// gives up that corner, and capturing on a corner removes the right there.
func castlingRevocations(board *chess.Board, o Outcome) []chess.Position {
	var corners []chess.Position
	revoke := func(p chess.Position) {
		if set, _ := board.Castling.Get(p); set {
			corners = append(corners, p)
		}
	}

	switch o.Piece.Type {
	case chess.King:
		corners = append(corners, rowRights(board, o.Piece.Colour.BackRow())...)
	case chess.Rook:
		revoke(o.From)
	}
	if !o.Captured.IsEmpty() {
		revoke(o.CapturedAt)
	}
	return corners
}

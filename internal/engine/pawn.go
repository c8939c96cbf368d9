package engine

import (
	"github.com/lgbarn/luchess-go/internal/chess"
)

// resolvePawn applies the pawn rules: single and double advance, diagonal
// capture, en passant and promotion on the last row.
func resolvePawn(board *chess.Board, move chess.Move, piece chess.Piece) Outcome {
	dir := piece.Colour.Direction()
	backRow := piece.Colour.BackRow()
	d := move.Delta()
	target := board.At(move.Target)

	var outcome Outcome
	switch {
	case d.Column == 0 && d.Row == dir:
		if !target.IsEmpty() {
			return reject(move, ReasonBlocked)
		}
		outcome = accept(board, move, piece, KindStep)
		outcome.ClearDoubleStep = board.DoubleStep.IsValid(move.Origin)

	case d.Column == 0 && d.Row == 2*dir:
		if move.Origin.Row != backRow+dir {
			return reject(move, ReasonIllegalShape)
		}
		if !target.IsEmpty() || LineIsBlocked(board, move.Origin, move.Target) {
			return reject(move, ReasonBlocked)
		}
		outcome = accept(board, move, piece, KindDoubleStep)
		outcome.SetDoubleStep = true

	case abs(d.Column) == 1 && d.Row == dir:
		if target.Holds(piece.Colour.Opposite()) {
			outcome = accept(board, move, piece, KindCapture)
			break
		}
		victimAt, ok := enPassantVictim(board, move, piece.Colour)
		if !ok {
			return reject(move, ReasonIllegalShape)
		}
		outcome = accept(board, move, piece, KindEnPassant)
		outcome.Captured = board.At(victimAt)
		outcome.CapturedAt = victimAt

	default:
		return reject(move, ReasonIllegalShape)
	}

	promoteTo, ok := promotionFor(move, piece.Colour)
	if !ok {
		return reject(move, ReasonBadPromotion)
	}
	outcome.PromoteTo = promoteTo
	return outcome
}

// enPassantVictim returns the square of the pawn an en-passant capture onto
// move.Target would remove. The target must be on the capturing side's
// en-passant row, with an enemy pawn directly behind it whose double-step
// flag, stored at the square it started from, is still set.
func enPassantVictim(board *chess.Board, move chess.Move, mover chess.Colour) (chess.Position, bool) {
	dir := mover.Direction()
	if move.Target.Row != mover.BackRow()+5*dir {
		return chess.Position{}, false
	}

	victimAt := move.Target.Sub(chess.Pos(0, dir))
	if !board.At(victimAt).Is(chess.Piece{Type: chess.Pawn, Colour: mover.Opposite()}) {
		return chess.Position{}, false
	}

	flagged, err := board.DoubleStep.Get(move.Target.Add(chess.Pos(0, dir)))
	if err != nil || !flagged {
		return chess.Position{}, false
	}
	return victimAt, true
}

// promotionFor returns the piece a pawn move promotes to. Reaching the last
// row without a choice promotes to a queen. A choice on any other row, or a
// choice of pawn or king, is not allowed.
func promotionFor(move chess.Move, mover chess.Colour) (chess.PieceType, bool) {
	lastRow := mover.Opposite().BackRow()
	if move.Target.Row != lastRow {
		return chess.NoPieceType, move.Promotion == chess.NoPieceType
	}

	switch move.Promotion {
	case chess.NoPieceType:
		return chess.Queen, true
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return move.Promotion, true
	}
	return chess.NoPieceType, false
}

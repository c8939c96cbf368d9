package engine

import (
	"fmt"

	"github.com/lgbarn/luchess-go/internal/chess"
)

// Apply commits a legal outcome produced by Resolve on the same board.
// It removes any captured piece, moves the piece (promoting a pawn on the
// last row), relocates the rook of a castle, updates the double-step and
// castling flags, advances the clocks and passes the move to the other side.
//
// Double-step flags the opponent set on their previous ply expire here, so
// an en-passant capture is only available on the immediate reply.
func Apply(board *chess.Board, o Outcome) {
	if !o.Legal {
		panic(fmt.Sprintf("engine: apply of rejected move %v (%v)", o.Move, o.Reason))
	}

	mover := o.Piece.Colour
	opponent := mover.Opposite()

	if o.Kind == KindEnPassant {
		board.Put(o.CapturedAt, chess.EmptySquare())
	}

	placed := o.Piece
	if o.PromoteTo != chess.NoPieceType {
		placed.Type = o.PromoteTo
	}
	board.Put(o.From, chess.EmptySquare())
	board.Put(o.To, chess.Occupied(placed))

	if o.Kind == KindCastle {
		board.Put(o.RookFrom, chess.EmptySquare())
		board.Put(o.RookTo, chess.Occupied(chess.Piece{Type: chess.Rook, Colour: mover}))
	}

	opponentStartRow := opponent.BackRow() + opponent.Direction()
	board.DoubleStep.ClearWhere(func(p chess.Position) bool { return p.Row == opponentStartRow })
	if o.ClearDoubleStep {
		_ = board.DoubleStep.Set(o.From, false)
	}
	if o.SetDoubleStep {
		_ = board.DoubleStep.Set(o.From, true)
	}

	for _, corner := range o.RevokeCastling {
		_ = board.Castling.Set(corner, false)
	}

	if o.Piece.Type == chess.Pawn || o.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if mover == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = opponent
}

// Play resolves move on board and applies it if legal. The board is left
// untouched when the move is rejected.
func Play(board *chess.Board, move chess.Move) Outcome {
	o := Resolve(board, move)
	if o.Legal {
		Apply(board, o)
	}
	return o
}

// TryMove reports whether move was legal, applying it if so.
func TryMove(board *chess.Board, move chess.Move) bool {
	return Play(board, move).Legal
}

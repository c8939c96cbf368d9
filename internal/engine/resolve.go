// Package engine decides whether a move is legal under the movement rules
// of each piece type and applies legal moves to a board.
//
// Resolve never mutates the board. Everything a move changes, including the
// double-step and castling flags, is recorded in the Outcome and committed
// by Apply. An illegal move is an ordinary result, not an error.
package engine

import (
	"github.com/lgbarn/luchess-go/internal/chess"
)

// MoveKind classifies a legal move.
type MoveKind int

const (
	KindStep       MoveKind = iota // Move to an empty square
	KindCapture                    // Capture on the target square
	KindDoubleStep                 // Two-square pawn advance
	KindEnPassant                  // Pawn capture of a pawn beside it
	KindCastle                     // King and rook castle
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindCapture:
		return "capture"
	case KindDoubleStep:
		return "double step"
	case KindEnPassant:
		return "en passant"
	case KindCastle:
		return "castle"
	}
	return "unknown"
}

// RejectReason explains why a move was rejected.
type RejectReason int

const (
	ReasonNone            RejectReason = iota
	ReasonOffBoard                     // Origin or target outside the board
	ReasonEmptyOrigin                  // Nothing on the origin square
	ReasonWrongColour                  // Origin piece belongs to the side not on move
	ReasonFriendlyTarget               // Target holds a piece of the mover's colour
	ReasonKingCapture                  // Target holds the enemy king
	ReasonIllegalShape                 // The piece does not move that way
	ReasonBlocked                      // A piece stands in the way
	ReasonNoCastlingRight              // Castling right revoked or rook missing
	ReasonBadPromotion                 // Promotion piece missing, invalid or misplaced
	ReasonUnknownPiece                 // Origin holds an unrecognised piece type
)

var reasonText = map[RejectReason]string{
	ReasonNone:            "legal",
	ReasonOffBoard:        "position off the board",
	ReasonEmptyOrigin:     "origin square is empty",
	ReasonWrongColour:     "not that side's move",
	ReasonFriendlyTarget:  "target holds own piece",
	ReasonKingCapture:     "king cannot be captured",
	ReasonIllegalShape:    "piece cannot move that way",
	ReasonBlocked:         "path is blocked",
	ReasonNoCastlingRight: "no castling right",
	ReasonBadPromotion:    "invalid promotion",
	ReasonUnknownPiece:    "unknown piece type",
}

// String returns a short description of the reason.
func (r RejectReason) String() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return "unknown reason"
}

// Outcome is the verdict on a move. For a legal move it also records every
// change Apply must make.
type Outcome struct {
	Legal  bool
	Reason RejectReason
	Kind   MoveKind

	// The move as submitted.
	Move chess.Move

	// The moving piece and where it travels. These equal the move's origin
	// and target except for a castle requested by moving the rook onto its
	// own king, where they describe the king.
	Piece chess.Piece
	From  chess.Position
	To    chess.Position

	// What was captured, and where. Captured is empty when nothing was.
	Captured   chess.Square
	CapturedAt chess.Position

	// Rook relocation for KindCastle.
	RookFrom chess.Position
	RookTo   chess.Position

	// Piece the pawn becomes, or NoPieceType.
	PromoteTo chess.PieceType

	// Double-step flag updates at From.
	SetDoubleStep   bool
	ClearDoubleStep bool

	// Corners whose castling right is revoked.
	RevokeCastling []chess.Position
}

// IsCapture reports whether the move removes an enemy piece.
func (o Outcome) IsCapture() bool {
	return o.Legal && !o.Captured.IsEmpty()
}

func reject(move chess.Move, reason RejectReason) Outcome {
	return Outcome{Move: move, Reason: reason}
}

// accept builds a legal outcome for a piece travelling along the move,
// capturing whatever stands on the target.
func accept(board *chess.Board, move chess.Move, piece chess.Piece, kind MoveKind) Outcome {
	captured := board.At(move.Target)
	if kind == KindStep && !captured.IsEmpty() {
		kind = KindCapture
	}
	return Outcome{
		Legal:      true,
		Kind:       kind,
		Move:       move,
		Piece:      piece,
		From:       move.Origin,
		To:         move.Target,
		Captured:   captured,
		CapturedAt: move.Target,
	}
}

// Resolve decides whether move is legal on board. The board is only read.
//
// Checks run in order: both squares on the board, an occupied origin, the
// mover's colour on move, no friendly target (a rook moved onto its own king
// instead requests castling), no capture of the enemy king, then the rule for
// the piece type.
func Resolve(board *chess.Board, move chess.Move) Outcome {
	if !move.Origin.IsValid() || !move.Target.IsValid() {
		return reject(move, ReasonOffBoard)
	}

	piece, ok := board.At(move.Origin).Piece()
	if !ok {
		return reject(move, ReasonEmptyOrigin)
	}
	if piece.Colour != board.ToMove {
		return reject(move, ReasonWrongColour)
	}

	target := board.At(move.Target)
	if target.Holds(piece.Colour) {
		if piece.Type == chess.Rook && target.Is(chess.Piece{Type: chess.King, Colour: piece.Colour}) {
			return resolveRookCastle(board, move)
		}
		return reject(move, ReasonFriendlyTarget)
	}
	// No check detection filters moves, so the king is simply uncapturable.
	if occupant, ok := target.Piece(); ok && occupant.Type == chess.King {
		return reject(move, ReasonKingCapture)
	}
	if move.Promotion != chess.NoPieceType && piece.Type != chess.Pawn {
		return reject(move, ReasonBadPromotion)
	}

	var outcome Outcome
	switch piece.Type {
	case chess.Pawn:
		outcome = resolvePawn(board, move, piece)
	case chess.Knight:
		outcome = resolveKnight(board, move, piece)
	case chess.Bishop:
		outcome = resolveBishop(board, move, piece)
	case chess.Rook:
		outcome = resolveRook(board, move, piece)
	case chess.Queen:
		outcome = resolveQueen(board, move, piece)
	case chess.King:
		outcome = resolveKing(board, move, piece)
	default:
		return reject(move, ReasonUnknownPiece)
	}

	if outcome.Legal && outcome.Kind != KindCastle {
		outcome.RevokeCastling = castlingRevocations(board, outcome)
	}
	return outcome
}

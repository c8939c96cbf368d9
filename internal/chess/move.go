package chess

// Move is a fully-specified origin to target move.
type Move struct {
	Origin Position
	Target Position

	// Piece a pawn becomes on the last row. NoPieceType means Queen.
	Promotion PieceType
}

// NewMove creates a move without a promotion choice.
func NewMove(origin, target Position) Move {
	return Move{Origin: origin, Target: target}
}

// Delta returns Target - Origin.
func (m Move) Delta() Position {
	return m.Target.Sub(m.Origin)
}

// String returns "(c,r)->(c,r)".
func (m Move) String() string {
	s := m.Origin.String() + "->" + m.Target.String()
	if m.Promotion != NoPieceType {
		s += "=" + string(m.Promotion.Letter())
	}
	return s
}

// Package chess provides the core chess data model: colours, pieces,
// squares, positions and the board that owns them.
//
// Terms: file = column, rank = row. Column 0 is the a-file and row 0 is
// White's back rank, so a1 is (0,0) and h8 is (7,7).
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (pawn direction).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// BackRow returns the row holding the colour's pieces at the start.
func (c Colour) BackRow() int {
	if c == White {
		return MinRow
	}
	return MaxRow
}

// PieceType is the closed set of chess piece kinds.
// The zero value NoPieceType never appears on a board; it marks
// "no piece" in optional fields such as Move.Promotion.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "Pawn"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "None"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	switch t {
	case Pawn:
		return 'P'
	case Bishop:
		return 'B'
	case Knight:
		return 'N'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

// PieceTypeFromLetter is the inverse of Letter and accepts either case.
// It returns NoPieceType for any other byte.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoPieceType
}

// IsValid reports whether t is one of the six piece kinds.
func (t PieceType) IsValid() bool {
	return t >= Pawn && t <= King
}

// Piece is a (type, colour) pair. Equality is structural.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Type.String()
}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// Square is either empty or holds exactly one piece.
// The zero value is an empty square.
type Square struct {
	piece    Piece
	occupied bool
}

// EmptySquare returns an empty square.
func EmptySquare() Square {
	return Square{}
}

// Occupied returns a square holding p.
func Occupied(p Piece) Square {
	return Square{piece: p, occupied: true}
}

// IsEmpty reports whether no piece stands on the square.
func (s Square) IsEmpty() bool {
	return !s.occupied
}

// Piece returns the occupant and true, or the zero Piece and false.
func (s Square) Piece() (Piece, bool) {
	return s.piece, s.occupied
}

// Holds reports whether the square holds a piece of the given colour.
func (s Square) Holds(c Colour) bool {
	return s.occupied && s.piece.Colour == c
}

// Is reports whether the square holds exactly the given piece.
func (s Square) Is(p Piece) bool {
	return s.occupied && s.piece == p
}

// String returns the occupant's name or "Empty".
func (s Square) String() string {
	if !s.occupied {
		return "Empty"
	}
	return s.piece.String()
}

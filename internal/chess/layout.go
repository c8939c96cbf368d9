package chess

// Layout is a full assignment of squares, indexed like the board.
type Layout [NumSquares]Square

// StandardLayout returns the standard starting arrangement. A fresh value
// is built on every call so no caller can alter another's layout.
func StandardLayout() Layout {
	var l Layout
	backRow := [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		l[Pos(col, MinRow).Index()] = Occupied(W(backRow[col]))
		l[Pos(col, MinRow+1).Index()] = Occupied(W(Pawn))
		l[Pos(col, MaxRow-1).Index()] = Occupied(B(Pawn))
		l[Pos(col, MaxRow).Index()] = Occupied(B(backRow[col]))
	}
	return l
}

// InitializeStandardLayout overwrites all 64 squares with layout and starts
// a new game: White to move, clocks reset, no double-step flags. Castling
// rights are granted for each corner whose rook and king of the same colour
// stand on their starting squares.
func (b *Board) InitializeStandardLayout(layout Layout) {
	b.Clear()
	b.squares = layout
	for _, corner := range [...]Position{Pos(MinColumn, MinRow), Pos(MaxColumn, MinRow), Pos(MinColumn, MaxRow), Pos(MaxColumn, MaxRow)} {
		colour := White
		if corner.Row == MaxRow {
			colour = Black
		}
		if b.At(corner).Is(Piece{Rook, colour}) && b.At(KingStart(colour)).Is(Piece{King, colour}) {
			_ = b.Castling.Set(corner, true)
		}
	}
}

// KingStart returns the king's starting square for colour.
func KingStart(c Colour) Position {
	return Pos(4, c.BackRow())
}

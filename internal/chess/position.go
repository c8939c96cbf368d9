package chess

import (
	"fmt"

	"github.com/lgbarn/luchess-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	MinRow    = 0
	MaxRow    = BoardSize - 1
	MinColumn = 0
	MaxColumn = BoardSize - 1
)

// Position is a board coordinate. Positions are not range-checked at
// construction; consumers call IsValid before touching the board.
type Position struct {
	Column int
	Row    int
}

// Pos is shorthand for Position{Column: column, Row: row}.
func Pos(column, row int) Position {
	return Position{Column: column, Row: row}
}

// Add returns the component-wise sum p+q.
func (p Position) Add(q Position) Position {
	return Position{Column: p.Column + q.Column, Row: p.Row + q.Row}
}

// Sub returns the component-wise difference p-q.
func (p Position) Sub(q Position) Position {
	return Position{Column: p.Column - q.Column, Row: p.Row - q.Row}
}

// Less orders positions by column, then by row.
func (p Position) Less(q Position) bool {
	if p.Column != q.Column {
		return p.Column < q.Column
	}
	return p.Row < q.Row
}

// IsValid reports whether p lies on the board.
func (p Position) IsValid() bool {
	return p.Column >= MinColumn && p.Column <= MaxColumn &&
		p.Row >= MinRow && p.Row <= MaxRow
}

// Index returns Column + 8*Row. Only meaningful for valid positions.
func (p Position) Index() int {
	return p.Column + BoardSize*p.Row
}

// String returns "(column,row)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// PositionFromIndex is the inverse of Position.Index.
func PositionFromIndex(index int) (Position, error) {
	if index < 0 || index >= NumSquares {
		return Position{}, fmt.Errorf("index %d outside [0,%d]: %w", index, NumSquares-1, errors.ErrInvalidPosition)
	}
	return Position{Column: index % BoardSize, Row: index / BoardSize}, nil
}

// Package notation converts between board coordinates and their algebraic
// text forms, and turns move text into chess.Move values.
package notation

import (
	"fmt"

	"github.com/lgbarn/luchess-go/internal/chess"
	"github.com/lgbarn/luchess-go/internal/errors"
)

// FileToColumn converts a file letter 'a'-'h' to a column 0-7.
func FileToColumn(file byte) (int, error) {
	if file < 'a' || file > 'h' {
		return 0, fmt.Errorf("file %q outside a-h: %w", file, errors.ErrInvalidPosition)
	}
	return int(file - 'a'), nil
}

// RankToRow converts a rank digit '1'-'8' to a row 0-7.
func RankToRow(rank byte) (int, error) {
	if rank < '1' || rank > '8' {
		return 0, fmt.Errorf("rank %q outside 1-8: %w", rank, errors.ErrInvalidPosition)
	}
	return int(rank - '1'), nil
}

// ColumnToFile converts a column 0-7 to its file letter.
func ColumnToFile(column int) (byte, error) {
	if column < chess.MinColumn || column > chess.MaxColumn {
		return 0, fmt.Errorf("column %d outside 0-7: %w", column, errors.ErrInvalidPosition)
	}
	return byte('a' + column), nil
}

// RowToRank converts a row 0-7 to its rank digit.
func RowToRank(row int) (byte, error) {
	if row < chess.MinRow || row > chess.MaxRow {
		return 0, fmt.Errorf("row %d outside 0-7: %w", row, errors.ErrInvalidPosition)
	}
	return byte('1' + row), nil
}

// DecodeSquare parses square text such as "e4".
func DecodeSquare(s string) (chess.Position, error) {
	if len(s) != 2 {
		return chess.Position{}, fmt.Errorf("square %q must be two characters: %w", s, errors.ErrInvalidSquare)
	}
	col, err := FileToColumn(s[0])
	if err != nil {
		return chess.Position{}, fmt.Errorf("square %q: %w", s, err)
	}
	row, err := RankToRow(s[1])
	if err != nil {
		return chess.Position{}, fmt.Errorf("square %q: %w", s, err)
	}
	return chess.Pos(col, row), nil
}

// EncodeSquare returns the text form of p, such as "e4".
func EncodeSquare(p chess.Position) (string, error) {
	file, err := ColumnToFile(p.Column)
	if err != nil {
		return "", err
	}
	rank, err := RowToRank(p.Row)
	if err != nil {
		return "", err
	}
	return string([]byte{file, rank}), nil
}

// DecodeIndex parses square text and returns its board index.
func DecodeIndex(s string) (int, error) {
	p, err := DecodeSquare(s)
	if err != nil {
		return 0, err
	}
	return p.Index(), nil
}

// EncodeIndex returns the square text for a board index.
func EncodeIndex(index int) (string, error) {
	p, err := chess.PositionFromIndex(index)
	if err != nil {
		return "", err
	}
	return EncodeSquare(p)
}

// MustEncodeSquare is EncodeSquare for positions already known to be valid.
func MustEncodeSquare(p chess.Position) string {
	s, err := EncodeSquare(p)
	if err != nil {
		panic(err)
	}
	return s
}

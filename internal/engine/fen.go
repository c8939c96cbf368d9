package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/luchess-go/internal/chess"
	"github.com/lgbarn/luchess-go/internal/errors"
	"github.com/lgbarn/luchess-go/internal/notation"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Castling letters in FEN order, with the corner each one names.
var castlingLetters = [...]struct {
	letter byte
	corner chess.Position
}{
	{'K', chess.Pos(chess.MaxColumn, chess.MinRow)},
	{'Q', chess.Pos(chess.MinColumn, chess.MinRow)},
	{'k', chess.Pos(chess.MaxColumn, chess.MaxRow)},
	{'q', chess.Pos(chess.MinColumn, chess.MaxRow)},
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.InitializeStandardLayout(chess.StandardLayout())
	return board
}

// NewBoardFromFEN creates a board from a FEN string. Only the piece
// placement field is required; missing fields default to White to move,
// no castling, no en passant and clocks 0 and 1.
//
// The en-passant square is stored as the double-step flag on the square
// the pawn started from, which is how Resolve looks it up.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, fmt.Errorf("FEN has %d fields: %w", len(parts), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("placement has %d ranks: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, rank := range ranks {
		row := chess.MaxRow - i
		col := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			pt := chess.PieceTypeFromLetter(c)
			if pt == chess.NoPieceType {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col > chess.MaxColumn {
				return fmt.Errorf("rank %d overflows: %w", row+1, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Put(chess.Pos(col, row), chess.Occupied(chess.Piece{Type: pt, Colour: colour}))
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", row+1, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for i := 0; i < len(parts[2]); i++ {
		c := parts[2][i]
		found := false
		for _, cl := range castlingLetters {
			if cl.letter == c {
				_ = board.Castling.Set(cl.corner, true)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The square must
// lie behind a pawn of the side that just moved.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	square, err := notation.DecodeSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w: %w", parts[3], errors.ErrInvalidFEN, err)
	}

	mover := board.ToMove.Opposite()
	dir := mover.Direction()
	start := mover.BackRow() + dir
	if square.Row != start+dir {
		return fmt.Errorf("en passant square %s on wrong rank: %w", parts[3], errors.ErrInvalidFEN)
	}
	if !board.At(square.Add(chess.Pos(0, dir))).Is(chess.Piece{Type: chess.Pawn, Colour: mover}) {
		return fmt.Errorf("no pawn beyond en passant square %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	return board.DoubleStep.Set(chess.Pos(square.Column, start), true)
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 0)
		if err != nil {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 0)
		if err != nil || n == 0 {
			return fmt.Errorf("move number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// ToFEN converts a board to a FEN string.
func ToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.MaxRow; row >= chess.MinRow; row-- {
		emptyCount := 0
		for col := chess.MinColumn; col <= chess.MaxColumn; col++ {
			piece, ok := board.At(chess.Pos(col, row)).Piece()
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pieceLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > chess.MinRow {
			sb.WriteByte('/')
		}
	}
}

// pieceLetter returns the FEN letter for a piece: uppercase for White.
func pieceLetter(p chess.Piece) byte {
	letter := p.Type.Letter()
	if p.Colour == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, cl := range castlingLetters {
		if set, _ := board.Castling.Get(cl.corner); set {
			sb.WriteByte(cl.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square behind the pawn the side to move may
// capture en passant, or '-'.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	mover := board.ToMove.Opposite()
	dir := mover.Direction()
	start := mover.BackRow() + dir

	for col := chess.MinColumn; col <= chess.MaxColumn; col++ {
		if set, _ := board.DoubleStep.Get(chess.Pos(col, start)); set {
			sb.WriteString(notation.MustEncodeSquare(chess.Pos(col, start+dir)))
			return
		}
	}
	sb.WriteByte('-')
}

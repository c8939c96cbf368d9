package chess

import (
	"fmt"

	"github.com/lgbarn/luchess-go/internal/errors"
)

// Board holds all mutable game state. It is owned by a single goroutine
// and is mutated in place only by accepted moves.
type Board struct {
	// Squares indexed by Position.Index (column + 8*row).
	squares [NumSquares]Square

	// Who has the next move.
	ToMove Colour

	// The current move number, incremented after Black moves.
	MoveNumber uint

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// Pawns that reached their square with a two-square advance on the
	// previous ply, keyed by the square they started from.
	DoubleStep PositionKeyedFlags

	// Castling eligibility per corner rook.
	Castling PositionKeyedFlags
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
		DoubleStep: NewDoubleStepFlags(),
		Castling:   NewCastlingFlags(),
	}
}

// Get returns the square at p.
func (b *Board) Get(p Position) (Square, error) {
	if !p.IsValid() {
		return Square{}, fmt.Errorf("board access at %v: %w", p, errors.ErrInvalidPosition)
	}
	return b.squares[p.Index()], nil
}

// Set places sq at p.
func (b *Board) Set(p Position, sq Square) error {
	if !p.IsValid() {
		return fmt.Errorf("board update at %v: %w", p, errors.ErrInvalidPosition)
	}
	b.squares[p.Index()] = sq
	return nil
}

// At returns the square at p. It is for callers that have already checked
// p.IsValid() and panics otherwise, like an out-of-range slice index.
func (b *Board) At(p Position) Square {
	if !p.IsValid() {
		panic(fmt.Sprintf("chess: board access at %v", p))
	}
	return b.squares[p.Index()]
}

// Put places sq at p, panicking on an invalid position like At.
func (b *Board) Put(p Position, sq Square) {
	if !p.IsValid() {
		panic(fmt.Sprintf("chess: board update at %v", p))
	}
	b.squares[p.Index()] = sq
}

// Clear empties every square and resets the side to move, clocks and flags.
func (b *Board) Clear() {
	b.squares = [NumSquares]Square{}
	b.ToMove = White
	b.MoveNumber = 1
	b.HalfmoveClock = 0
	b.DoubleStep = NewDoubleStepFlags()
	b.Castling = NewCastlingFlags()
}

// Find returns the first position, in index order, holding p.
func (b *Board) Find(p Piece) (Position, bool) {
	for i, sq := range b.squares {
		if sq.Is(p) {
			return Position{Column: i % BoardSize, Row: i / BoardSize}, true
		}
	}
	return Position{}, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// BoardState captures all mutable board state for save/restore and
// comparison. Two states are equal (==) exactly when the boards they were
// taken from are indistinguishable.
type BoardState struct {
	Squares       [NumSquares]Square
	ToMove        Colour
	MoveNumber    uint
	HalfmoveClock uint
	DoubleStep    uint64
	Castling      uint64
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:       b.squares,
		ToMove:        b.ToMove,
		MoveNumber:    b.MoveNumber,
		HalfmoveClock: b.HalfmoveClock,
		DoubleStep:    b.DoubleStep.Bits(),
		Castling:      b.Castling.Bits(),
	}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.squares = s.Squares
	b.ToMove = s.ToMove
	b.MoveNumber = s.MoveNumber
	b.HalfmoveClock = s.HalfmoveClock
	b.DoubleStep = NewDoubleStepFlags()
	b.DoubleStep.SetBits(s.DoubleStep)
	b.Castling = NewCastlingFlags()
	b.Castling.SetBits(s.Castling)
}

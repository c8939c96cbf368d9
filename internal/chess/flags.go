package chess

import (
	"fmt"

	"github.com/lgbarn/luchess-go/internal/errors"
)

// Slot counts for the two flag sets a board carries.
const (
	DoubleStepSlots = 2 * BoardSize
	CastlingSlots   = 4
)

// PositionKeyedFlags is a fixed-size set of booleans addressed by board
// position. Which positions are addressable, and which slot each maps to,
// is decided by the validity and index functions given at construction.
//
// The flags are packed into a single word, so a copied value is an
// independent set.
type PositionKeyedFlags struct {
	capacity int
	valid    func(Position) bool
	index    func(Position) int
	bits     uint64
}

// NewPositionKeyedFlags creates an all-false flag set. Capacity must be in
// [1,64] and index must map every valid position into [0,capacity).
func NewPositionKeyedFlags(capacity int, valid func(Position) bool, index func(Position) int) PositionKeyedFlags {
	if capacity < 1 || capacity > 64 {
		panic(fmt.Sprintf("chess: flag capacity %d outside [1,64]", capacity))
	}
	return PositionKeyedFlags{capacity: capacity, valid: valid, index: index}
}

// NewDoubleStepFlags tracks pawns that arrived via a two-square advance.
// Flags are keyed by the pawn's starting square: row 1 for White, row 6
// for Black.
func NewDoubleStepFlags() PositionKeyedFlags {
	return NewPositionKeyedFlags(DoubleStepSlots, isPawnStartSquare, doubleStepIndex)
}

// NewCastlingFlags tracks castling eligibility for the rook on each corner.
func NewCastlingFlags() PositionKeyedFlags {
	return NewPositionKeyedFlags(CastlingSlots, IsCorner, cornerIndex)
}

func isPawnStartSquare(p Position) bool {
	return p.Column >= MinColumn && p.Column <= MaxColumn &&
		(p.Row == MinRow+1 || p.Row == MaxRow-1)
}

func doubleStepIndex(p Position) int {
	if p.Row == MinRow+1 {
		return p.Column
	}
	return BoardSize + p.Column
}

// IsCorner reports whether p is a1, h1, a8 or h8.
func IsCorner(p Position) bool {
	return (p.Column == MinColumn || p.Column == MaxColumn) &&
		(p.Row == MinRow || p.Row == MaxRow)
}

func cornerIndex(p Position) int {
	index := 0
	if p.Row == MaxRow {
		index |= 1
	}
	if p.Column == MaxColumn {
		index |= 2
	}
	return index
}

// Capacity returns the number of slots.
func (f *PositionKeyedFlags) Capacity() int {
	return f.capacity
}

// IsValid reports whether p addresses a slot. It has no side effects.
func (f *PositionKeyedFlags) IsValid(p Position) bool {
	return f.valid != nil && f.valid(p)
}

// Get returns the flag stored for p.
func (f *PositionKeyedFlags) Get(p Position) (bool, error) {
	if !f.IsValid(p) {
		return false, fmt.Errorf("flag lookup at %v: %w", p, errors.ErrInvalidPosition)
	}
	return f.bits&(1<<uint(f.index(p))) != 0, nil
}

// Set overwrites the flag stored for p.
func (f *PositionKeyedFlags) Set(p Position, value bool) error {
	if !f.IsValid(p) {
		return fmt.Errorf("flag update at %v: %w", p, errors.ErrInvalidPosition)
	}
	mask := uint64(1) << uint(f.index(p))
	if value {
		f.bits |= mask
	} else {
		f.bits &^= mask
	}
	return nil
}

// ClearWhere clears every set flag whose position satisfies pred.
func (f *PositionKeyedFlags) ClearWhere(pred func(Position) bool) {
	for i := 0; i < NumSquares; i++ {
		p := Position{Column: i % BoardSize, Row: i / BoardSize}
		if f.IsValid(p) && pred(p) {
			f.bits &^= uint64(1) << uint(f.index(p))
		}
	}
}

// Bits returns the packed flag word.
func (f *PositionKeyedFlags) Bits() uint64 {
	return f.bits
}

// SetBits replaces the packed flag word; bits beyond capacity are dropped.
func (f *PositionKeyedFlags) SetBits(bits uint64) {
	if f.capacity < 64 {
		bits &= (uint64(1) << uint(f.capacity)) - 1
	}
	f.bits = bits
}

// Package hashing provides duplicate detection for replayed games.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/luchess-go/internal/chess"
	"github.com/lgbarn/luchess-go/internal/replay"
)

// Zobrist key layout: one key per (piece, square), then one per castling
// corner, one per double-step slot and one for White to move.
const (
	numPieceKinds     = 12
	castlingKeyBase   = numPieceKinds * chess.NumSquares
	doubleStepKeyBase = castlingKeyBase + chess.CastlingSlots
	turnKey           = doubleStepKeyBase + chess.DoubleStepSlots
	numKeys           = turnKey + 1
)

// Fixed seeds keep hashes stable across runs, so stored hashes stay valid.
var zobristKeys = newZobristKeys(0x6c756368657373, 0x7a6f6272697374)

func newZobristKeys(seed1, seed2 uint64) [numKeys]uint64 {
	rng := rand.New(rand.NewPCG(seed1, seed2))
	var keys [numKeys]uint64
	for i := range keys {
		keys[i] = rng.Uint64()
	}
	return keys
}

func pieceIndex(p chess.Piece) int {
	index := int(p.Type-chess.Pawn) * 2
	if p.Colour == chess.White {
		index++
	}
	return index
}

// StateHash returns the Zobrist hash of the position in s: placement, side
// to move, castling corners and double-step flags. The clocks are not
// hashed, so the same position reached by different move orders hashes
// equal.
func StateHash(s chess.BoardState) uint64 {
	var hash uint64

	for i, sq := range s.Squares {
		p, ok := sq.Piece()
		if !ok || !p.Type.IsValid() {
			continue
		}
		hash ^= zobristKeys[pieceIndex(p)*chess.NumSquares+i]
	}

	for i := 0; i < chess.CastlingSlots; i++ {
		if s.Castling&(uint64(1)<<uint(i)) != 0 {
			hash ^= zobristKeys[castlingKeyBase+i]
		}
	}
	for i := 0; i < chess.DoubleStepSlots; i++ {
		if s.DoubleStep&(uint64(1)<<uint(i)) != 0 {
			hash ^= zobristKeys[doubleStepKeyBase+i]
		}
	}

	if s.ToMove == chess.White {
		hash ^= zobristKeys[turnKey]
	}
	return hash
}

// BoardHash returns the Zobrist hash of b's current position.
func BoardHash(b *chess.Board) uint64 {
	return StateHash(b.SaveState())
}

// positionOf strips the clocks from s.
func positionOf(s chess.BoardState) chess.BoardState {
	s.MoveNumber = 0
	s.HalfmoveClock = 0
	return s
}

// GameSignature stores identifying information about a replayed game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Plies is the number of moves played
	Plies int
	// GameID is the first game seen with this signature
	GameID string
	// position guards against hash collisions
	position chess.BoardState
}

// DuplicateDetector tracks final positions for duplicate game detection.
// It is not safe for concurrent use; feed it results in input order.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same number of plies
	useExactMatch bool
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	uniqueCount    int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if res ends in a position already seen and records it
// otherwise. It returns the matching signature and true for a duplicate.
// Once the detector is full, new positions are checked but not recorded.
func (d *DuplicateDetector) CheckAndAdd(res replay.Result) (GameSignature, bool) {
	sig := GameSignature{
		Hash:     StateHash(res.State),
		Plies:    res.Plies,
		GameID:   res.Game.ID,
		position: positionOf(res.State),
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.uniqueCount++
	}
	return sig, false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.position != b.position {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of recorded unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}

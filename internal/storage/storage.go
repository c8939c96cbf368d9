// Package storage persists replayed games in a BadgerDB database, keyed by
// game id.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/luchess-go/internal/errors"
	"github.com/lgbarn/luchess-go/internal/hashing"
	"github.com/lgbarn/luchess-go/internal/replay"
)

const gameKeyPrefix = "game/"

// Record is a stored replay.
type Record struct {
	ID    string   `json:"id"`
	Moves []string `json:"moves"`
	Plies int      `json:"plies"`
	FEN   string   `json:"fen"`

	// Packed flag words and Zobrist hash of the final position.
	DoubleStep uint64 `json:"double_step"`
	Castling   uint64 `json:"castling"`
	Hash       uint64 `json:"hash"`

	// Error describes the move that stopped the replay, if any.
	Error   string    `json:"error,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// NewRecord builds a record from a replay result.
func NewRecord(res replay.Result) Record {
	rec := Record{
		ID:         res.Game.ID,
		Moves:      res.Game.Moves,
		Plies:      res.Plies,
		FEN:        res.FEN,
		DoubleStep: res.State.DoubleStep,
		Castling:   res.State.Castling,
		Hash:       hashing.StateHash(res.State),
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}
	return rec
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens or creates a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening game store: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gameKeyPrefix + id)
}

// SaveGame stores rec, replacing any record with the same id.
func (s *Storage) SaveGame(rec Record) error {
	if rec.ID == "" {
		return fmt.Errorf("saving game: empty id: %w", errors.ErrInvalidConfig)
	}
	rec.SavedAt = time.Now()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
}

// SaveResults stores a record for each result in a single batch.
func (s *Storage) SaveResults(results []replay.Result) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	now := time.Now()
	for _, res := range results {
		rec := NewRecord(res)
		rec.SavedAt = now
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := wb.Set(gameKey(rec.ID), data); err != nil {
			return fmt.Errorf("saving game %s: %w", rec.ID, err)
		}
	}
	return wb.Flush()
}

// LoadGame returns the record stored for id.
func (s *Storage) LoadGame(id string) (Record, error) {
	var rec Record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, err
}

// ListGames returns the ids of all stored games in key order.
func (s *Storage) ListGames() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(gameKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			ids = append(ids, strings.TrimPrefix(string(it.Item().Key()), gameKeyPrefix))
		}
		return nil
	})

	return ids, err
}

// DeleteGame removes the record for id.
func (s *Storage) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(id)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(gameKey(id))
	})
}

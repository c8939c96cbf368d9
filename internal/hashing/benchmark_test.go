package hashing

import (
	"testing"

	"github.com/lgbarn/luchess-go/internal/engine"
	"github.com/lgbarn/luchess-go/internal/replay"
)

var benchFENPositions = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkBoardHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			board, _ := engine.NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardHash(board)
			}
		})
	}
}

func BenchmarkDuplicateDetector(b *testing.B) {
	r := replay.NewReplayer(nil)
	results := []replay.Result{
		r.Replay(replay.Game{ID: "a", Moves: []string{"e2e4", "e7e5"}}),
		r.Replay(replay.Game{ID: "b", Moves: []string{"d2d4", "d7d5"}}),
		r.Replay(replay.Game{ID: "c", Moves: []string{"c2c4", "c7c5"}}),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detector := NewDuplicateDetector(false, 0)
		for _, res := range results {
			detector.CheckAndAdd(res)
		}
	}
}

package replay

import (
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/luchess-go/internal/engine"
	lcerrors "github.com/lgbarn/luchess-go/internal/errors"
	"github.com/lgbarn/luchess-go/internal/testutil"
)

func TestParseGames(t *testing.T) {
	input := `# sample games
italian: e2e4 e7e5 g1f3 b8c6 f1c4

d2d4 d7d5
  scandi:   e2-e4 d7-d5
empty:
`
	games, err := ParseGames(strings.NewReader(input))
	testutil.AssertNoError(t, err)

	want := []Game{
		{ID: "italian", Line: 2, Moves: []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4"}},
		{ID: "2", Line: 4, Moves: []string{"d2d4", "d7d5"}},
		{ID: "scandi", Line: 5, Moves: []string{"e2-e4", "d7-d5"}},
		{ID: "empty", Line: 6, Moves: []string{}},
	}
	testutil.AssertEqual(t, games, want)
}

func TestParseGames_BadID(t *testing.T) {
	for _, input := range []string{": e2e4", "two words: e2e4"} {
		games, err := ParseGames(strings.NewReader("ok: e2e4\n" + input))
		if !errors.Is(err, lcerrors.ErrParseFailure) {
			t.Errorf("ParseGames(%q) error = %v; want ErrParseFailure", input, err)
		}
		var pe *lcerrors.ParseError
		if !errors.As(err, &pe) || pe.Line != 2 {
			t.Errorf("ParseGames(%q) error = %v; want ParseError on line 2", input, err)
		}
		testutil.AssertEqual(t, len(games), 1)
	}
}

func TestReplay(t *testing.T) {
	r := NewReplayer(nil)

	tests := []struct {
		name      string
		moves     []string
		wantPlies int
		wantFEN   string
		wantErr   error
		wantPly   int
		reason    engine.RejectReason
	}{
		{
			name:      "italian opening with castling",
			moves:     []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "e1g1"},
			wantPlies: 7,
			wantFEN:   "r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		},
		{
			name:      "no moves",
			wantPlies: 0,
			wantFEN:   engine.InitialFEN,
		},
		{
			name:      "stops at illegal move",
			moves:     []string{"e2e4", "e7e5", "e4e5", "d7d6"},
			wantPlies: 2,
			wantFEN:   "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
			wantErr:   lcerrors.ErrIllegalMove,
			wantPly:   3,
			reason:    engine.ReasonBlocked,
		},
		{
			name:      "stops at bad notation",
			moves:     []string{"e2e4", "Nf6"},
			wantPlies: 1,
			wantFEN:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantErr:   lcerrors.ErrInvalidNotation,
			wantPly:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Replay(Game{ID: "g", Moves: tt.moves})

			testutil.AssertEqual(t, res.Plies, tt.wantPlies)
			testutil.AssertEqual(t, res.FEN, tt.wantFEN)
			testutil.AssertEqual(t, res.Reason, tt.reason)

			if tt.wantErr == nil {
				testutil.AssertTrue(t, res.OK(), "replay failed: %v", res.Err)
				return
			}
			if !errors.Is(res.Err, tt.wantErr) {
				t.Fatalf("Err = %v; want %v", res.Err, tt.wantErr)
			}
			var ge *lcerrors.GameError
			if !errors.As(res.Err, &ge) {
				t.Fatalf("Err = %T; want *GameError", res.Err)
			}
			testutil.AssertEqual(t, ge.PlyNum, tt.wantPly)
			testutil.AssertEqual(t, ge.MoveText, tt.moves[tt.wantPly-1])
			testutil.AssertEqual(t, ge.GameID, "g")
		})
	}
}

func TestReplay_DoesNotShareBoards(t *testing.T) {
	r := NewReplayer(nil)
	first := r.Replay(Game{ID: "a", Moves: []string{"e2e4"}})
	second := r.Replay(Game{ID: "b", Moves: []string{"d2d4"}})

	testutil.AssertContains(t, first.FEN, "4P3")
	testutil.AssertContains(t, second.FEN, "3P4")
	testutil.AssertEqual(t, second.Plies, 1)
}

func TestNewReplayerFromFEN(t *testing.T) {
	r, err := NewReplayerFromFEN("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	testutil.AssertNoError(t, err)

	res := r.Replay(Game{ID: "promo", Moves: []string{"a7a8n"}})
	testutil.AssertTrue(t, res.OK(), "promotion replay failed: %v", res.Err)
	testutil.AssertEqual(t, res.FEN, "N7/8/8/8/8/8/8/4K2k b - - 0 1")

	if _, err := NewReplayerFromFEN("not a fen"); !errors.Is(err, lcerrors.ErrInvalidFEN) {
		t.Errorf("NewReplayerFromFEN(bad) error = %v; want ErrInvalidFEN", err)
	}

	r, err = NewReplayerFromFEN("")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, r.Replay(Game{}).FEN, engine.InitialFEN)
}

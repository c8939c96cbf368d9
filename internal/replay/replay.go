package replay

import (
	"fmt"

	"github.com/lgbarn/luchess-go/internal/chess"
	"github.com/lgbarn/luchess-go/internal/engine"
	"github.com/lgbarn/luchess-go/internal/errors"
	"github.com/lgbarn/luchess-go/internal/notation"
)

// Result is the outcome of replaying one game.
type Result struct {
	Game  Game
	Plies int              // moves accepted before the game ended or a move was rejected
	FEN   string           // final position
	State chess.BoardState // final position, for storage
	// Reason is set when a move was rejected by the engine.
	Reason engine.RejectReason
	// Err is a *errors.GameError wrapping ErrIllegalMove or
	// ErrInvalidNotation, or nil when every move was played.
	Err error
}

// OK reports whether every move of the game was played.
func (r Result) OK() bool {
	return r.Err == nil
}

// Replayer plays games from a fixed starting position. The start board is
// only read, so one Replayer may be shared by concurrent workers.
type Replayer struct {
	start *chess.Board
}

// NewReplayer creates a Replayer. A nil start uses the standard layout.
func NewReplayer(start *chess.Board) *Replayer {
	if start == nil {
		start = engine.NewInitialBoard()
	}
	return &Replayer{start: start.Copy()}
}

// NewReplayerFromFEN creates a Replayer starting from fen, or from the
// standard layout when fen is empty.
func NewReplayerFromFEN(fen string) (*Replayer, error) {
	if fen == "" {
		return NewReplayer(nil), nil
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewReplayer(board), nil
}

// Replay plays game on a private copy of the start board.
func (r *Replayer) Replay(game Game) Result {
	board := r.start.Copy()
	result := Result{Game: game}

	for i, text := range game.Moves {
		ply := i + 1

		move, err := notation.ParseMove(text)
		if err != nil {
			result.Err = &errors.GameError{Err: err, GameID: game.ID, PlyNum: ply, MoveText: text, Line: game.Line}
			break
		}

		if o := engine.Play(board, move); !o.Legal {
			result.Reason = o.Reason
			result.Err = &errors.GameError{
				Err:      fmt.Errorf("%w: %s", errors.ErrIllegalMove, o.Reason),
				GameID:   game.ID,
				PlyNum:   ply,
				MoveText: text,
				Line:     game.Line,
			}
			break
		}
		result.Plies = ply
	}

	result.FEN = engine.ToFEN(board)
	result.State = board.SaveState()
	return result
}

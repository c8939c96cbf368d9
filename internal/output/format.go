package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/luchess-go/internal/engine"
	"github.com/lgbarn/luchess-go/internal/errors"
	"github.com/lgbarn/luchess-go/internal/replay"
)

const (
	statusOK      = "ok"
	statusIllegal = "illegal"
	statusInvalid = "invalid"
)

// JSONResult represents a replay result in JSON format.
type JSONResult struct {
	ID       string       `json:"id"`
	Line     int          `json:"line,omitempty"`
	Moves    []string     `json:"moves"`
	Status   string       `json:"status"`
	Plies    int          `json:"plies"`
	FinalFEN string       `json:"finalFEN"`
	Failure  *JSONFailure `json:"failure,omitempty"`
}

// JSONFailure describes the move that stopped a replay.
type JSONFailure struct {
	Ply    int    `json:"ply"`
	Move   string `json:"move"`
	Reason string `json:"reason"`
}

// JSONOutput holds all results of a run.
type JSONOutput struct {
	Games   []*JSONResult `json:"games"`
	Summary *Summary      `json:"summary,omitempty"`
}

func statusOf(res replay.Result) string {
	switch {
	case res.OK():
		return statusOK
	case res.Reason != engine.ReasonNone:
		return statusIllegal
	default:
		return statusInvalid
	}
}

// failureOf returns the ply, move text and description of the failing move.
func failureOf(res replay.Result) (int, string, string) {
	var ge *errors.GameError
	if !errors.As(res.Err, &ge) {
		return 0, "", res.Err.Error()
	}
	if res.Reason != engine.ReasonNone {
		return ge.PlyNum, ge.MoveText, res.Reason.String()
	}
	return ge.PlyNum, ge.MoveText, ge.Err.Error()
}

// ResultToJSON converts a replay result to JSON format.
func ResultToJSON(res replay.Result) *JSONResult {
	jr := &JSONResult{
		ID:       res.Game.ID,
		Line:     res.Game.Line,
		Moves:    res.Game.Moves,
		Status:   statusOf(res),
		Plies:    res.Plies,
		FinalFEN: res.FEN,
	}
	if jr.Moves == nil {
		jr.Moves = []string{}
	}
	if !res.OK() {
		ply, move, reason := failureOf(res)
		jr.Failure = &JSONFailure{Ply: ply, Move: move, Reason: reason}
	}
	return jr
}

// FormatResult renders res as a single line:
//
//	italian: ok plies=7 fen=r1bqk1nr/...
//	scholar: illegal ply 3 "e4e5": path is blocked
func FormatResult(res replay.Result, showFEN bool) string {
	var sb strings.Builder

	status := statusOf(res)
	fmt.Fprintf(&sb, "%s: %s", res.Game.ID, status)
	if status == statusOK {
		fmt.Fprintf(&sb, " plies=%d", res.Plies)
	} else {
		ply, move, reason := failureOf(res)
		fmt.Fprintf(&sb, " ply %d %q: %s", ply, move, reason)
	}
	if showFEN {
		sb.WriteString(" fen=")
		sb.WriteString(res.FEN)
	}
	return sb.String()
}

// Package replay reads games written as coordinate move lists and plays
// them out on a board, stopping at the first move the engine rejects.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/luchess-go/internal/errors"
)

// Game is one line of input: an identifier and its moves in order.
type Game struct {
	ID    string   `json:"id"`
	Line  int      `json:"line,omitempty"`
	Moves []string `json:"moves"`
}

// ParseGames reads one game per line in the form
//
//	id: e2e4 e7e5 g1f3
//
// The "id:" prefix is optional; games without one are numbered from 1 in
// input order. Blank lines and lines starting with '#' are skipped.
func ParseGames(r io.Reader) ([]Game, error) {
	var games []Game
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		game, err := parseLine(line, lineNum, len(games)+1)
		if err != nil {
			return games, err
		}
		games = append(games, game)
	}
	if err := scanner.Err(); err != nil {
		return games, fmt.Errorf("reading games: %w", err)
	}
	return games, nil
}

func parseLine(line string, lineNum, seq int) (Game, error) {
	game := Game{ID: fmt.Sprintf("%d", seq), Line: lineNum}

	if id, rest, found := strings.Cut(line, ":"); found {
		id = strings.TrimSpace(id)
		if id == "" || strings.ContainsAny(id, " \t") {
			return Game{}, &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Line:     lineNum,
				Column:   1,
				Expected: "game id before ':'",
				Got:      fmt.Sprintf("%q", id),
			}
		}
		game.ID = id
		line = rest
	}

	game.Moves = strings.Fields(line)
	return game, nil
}

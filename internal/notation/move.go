package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/luchess-go/internal/chess"
	"github.com/lgbarn/luchess-go/internal/errors"
)

// ParseMove parses coordinate move text: "e2e4", "e2-e4" or "e2 e4", with
// an optional promotion letter, as in "e7e8q" or "e7-e8=N".
func ParseMove(s string) (chess.Move, error) {
	text := strings.TrimSpace(s)
	text = strings.NewReplacer("-", "", " ", "", "=", "").Replace(text)

	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidNotation)
	}

	origin, err := DecodeSquare(text[0:2])
	if err != nil {
		return chess.Move{}, fmt.Errorf("move %q origin: %w: %w", s, errors.ErrInvalidNotation, err)
	}
	target, err := DecodeSquare(text[2:4])
	if err != nil {
		return chess.Move{}, fmt.Errorf("move %q target: %w: %w", s, errors.ErrInvalidNotation, err)
	}

	move := chess.NewMove(origin, target)
	if len(text) == 5 {
		move.Promotion = chess.PieceTypeFromLetter(text[4])
		if move.Promotion == chess.NoPieceType {
			return chess.Move{}, fmt.Errorf("move %q promotion %q: %w", s, text[4], errors.ErrInvalidNotation)
		}
	}
	return move, nil
}

// FormatMove returns the compact coordinate form of m, such as "e2e4" or
// "e7e8n". It is the inverse of ParseMove for valid moves.
func FormatMove(m chess.Move) (string, error) {
	origin, err := EncodeSquare(m.Origin)
	if err != nil {
		return "", err
	}
	target, err := EncodeSquare(m.Target)
	if err != nil {
		return "", err
	}
	s := origin + target
	if m.Promotion != chess.NoPieceType {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s, nil
}

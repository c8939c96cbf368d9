package notation

import (
	"regexp"
)

// halfMovePattern matches one side's move in standard algebraic notation:
// an optional piece letter, an optional disambiguating file or rank, an
// optional capture mark, the target square, an optional promotion and an
// optional check or mate mark. Castling is matched as a whole token.
const halfMovePattern = `(O-O-O|O-O|([KQRNB]?)([a-h]|[1-8])?(x?)([a-h][1-8])(?:=([QRNB]))?)([+#]?)`

const resultPattern = `1-0|0-1|1/2-1/2|\*`

// HalfMove is the tokens of one side's move.
type HalfMove struct {
	Text           string
	Castle         string // "O-O" or "O-O-O", otherwise empty
	Piece          string // "K", "Q", "R", "N", "B", or empty for a pawn
	Disambiguation string
	Capture        bool
	Target         string
	Promotion      string
	Check          string // "+", "#" or empty
}

// Match is the result of validating a move pair such as "Bxd7+ Qxd7".
type Match struct {
	White  HalfMove
	Black  *HalfMove // nil when only one move was given
	Result string   // game result in place of the second move, if any
}

// Validator checks move text in standard algebraic notation. It only checks
// the shape of the text: whether the move is legal on a board, or which
// piece an ambiguous move refers to, is not decided here.
type Validator struct {
	pair *regexp.Regexp
}

// NewValidator compiles the notation pattern.
func NewValidator() *Validator {
	return &Validator{
		pair: regexp.MustCompile(`^` + halfMovePattern + `(?: (?:` + halfMovePattern + `|(` + resultPattern + `)))?$`),
	}
}

// Validate reports whether move is one or two well-formed half-moves
// separated by a space, returning their tokens.
func (v *Validator) Validate(move string) (Match, bool) {
	m := v.pair.FindStringSubmatch(move)
	if m == nil {
		return Match{}, false
	}

	// Groups 1-7 describe the first half-move, 8-14 the second, 15 the result.
	match := Match{White: halfMoveFrom(m[1:8])}
	if m[8] != "" {
		black := halfMoveFrom(m[8:15])
		match.Black = &black
	}
	match.Result = m[15]
	return match, true
}

func halfMoveFrom(g []string) HalfMove {
	h := HalfMove{Text: g[0] + g[6], Check: g[6]}
	if g[0] == "O-O" || g[0] == "O-O-O" {
		h.Castle = g[0]
		return h
	}
	h.Piece = g[1]
	h.Disambiguation = g[2]
	h.Capture = g[3] == "x"
	h.Target = g[4]
	h.Promotion = g[5]
	return h
}

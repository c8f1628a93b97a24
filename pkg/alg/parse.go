package alg

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cubedeck/cubedeck/pkg/errors"
)

// Move is one atomic notation token.
//
// Exactly one of Double and Prime may be set on a well-formed token; the
// layer prefix and wide marker are independent of both. [ParseMoves] never
// produces a token with both turn modifiers: a primed double turn in source
// notation (e.g. "U2'", a finger-direction hint) reaches the same cube state
// as the plain double turn and is normalized to Double only.
type Move struct {
	Layers int    // layer-count prefix, 0 if absent (always >= 2 when present)
	Base   string // face, slice, or rotation letter: R, u, M, x, ...
	Wide   bool   // trailing "w" wide-move marker
	Double bool   // "2" turn suffix
	Prime  bool   // "'" inverse suffix
}

// String renders the token back in standard notation.
func (m Move) String() string {
	var b strings.Builder
	if m.Layers >= 2 {
		b.WriteString(strconv.Itoa(m.Layers))
	}
	b.WriteString(m.Base)
	if m.Wide {
		b.WriteByte('w')
	}
	if m.Double {
		b.WriteByte('2')
	}
	if m.Prime {
		b.WriteByte('\'')
	}
	return b.String()
}

// moveRE matches a single move token: optional layer prefix, base letter,
// optional wide marker, optional "2", optional prime(s). The trailing prime
// may follow the "2" ("R2'") or stand alone ("R'").
var moveRE = regexp.MustCompile(`^([2-9][0-9]*)?([A-Za-z])(w)?(2)?(')?$`)

// ParseMoves tokenizes raw cube notation into Move tokens.
//
// Parentheses group moves for readability only and are discarded. Tokens are
// whitespace-separated; each must match the standard pattern
// [layers][base][w][2]['] where layers is an integer >= 2. An empty or
// blank string yields an empty (non-nil) slice.
//
// Returns an INVALID_MOVE error for anything unrecognised, naming the
// offending token.
func ParseMoves(raw string) ([]Move, error) {
	cleaned := strings.NewReplacer("(", " ", ")", " ").Replace(raw)

	moves := []Move{}
	for _, tok := range strings.Fields(cleaned) {
		m, err := parseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func parseMove(tok string) (Move, error) {
	sub := moveRE.FindStringSubmatch(tok)
	if sub == nil {
		return Move{}, errors.New(errors.ErrCodeInvalidMove, "unrecognised move token %q", tok)
	}

	m := Move{
		Base:   sub[2],
		Wide:   sub[3] != "",
		Double: sub[4] != "",
		Prime:  sub[5] != "",
	}
	if sub[1] != "" {
		layers, err := strconv.Atoi(sub[1])
		if err != nil || layers < 2 {
			return Move{}, errors.New(errors.ErrCodeInvalidMove, "invalid layer prefix in move token %q", tok)
		}
		m.Layers = layers
	}

	// "R2'" denotes a double turn executed anticlockwise; on paper the
	// direction is invisible, so collapse it to the plain double turn.
	if m.Double && m.Prime {
		m.Prime = false
	}
	return m, nil
}

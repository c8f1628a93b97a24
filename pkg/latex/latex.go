// Package latex formats cube notation and free text for the card document.
//
// Move tokens are typeset in math mode so that inverse marks render as prime
// glyphs and double turns as superscript numerals; a literal apostrophe or
// digit in text mode would not match conventional cube notation. Free text
// (case names) goes through [Escape] so LaTeX control characters display
// literally.
//
// Both transforms are pure functions of their input.
package latex

import (
	"strconv"
	"strings"

	"github.com/cubedeck/cubedeck/pkg/alg"
	"github.com/cubedeck/cubedeck/pkg/errors"
)

// FormatMoves renders a move sequence as LaTeX, tokens separated by single
// spaces. An empty sequence yields an empty string.
//
// Unmodified moves stay plain text ("R"). A layer prefix, double-turn or
// prime modifier switches the token to math mode: "R'" becomes $\text{R}'$,
// "U2" becomes $\text{U}^{2}$, "3Rw" becomes $\text{3Rw}$. The wide marker
// stays glued to the base letter inside \text, before any modifier.
//
// A token carrying both the double and prime modifiers is contradictory
// (the parser never emits one) and returns an INVALID_MOVE error.
func FormatMoves(moves []alg.Move) (string, error) {
	tokens := make([]string, len(moves))
	for i, m := range moves {
		tok, err := formatMove(m)
		if err != nil {
			return "", err
		}
		tokens[i] = tok
	}
	return strings.Join(tokens, " "), nil
}

func formatMove(m alg.Move) (string, error) {
	if m.Double && m.Prime {
		return "", errors.New(errors.ErrCodeInvalidMove,
			"move %q has both double and prime modifiers", m.String())
	}
	if m.Base == "" {
		return "", errors.New(errors.ErrCodeInvalidMove, "move token has no base letter")
	}

	base := m.Base
	if m.Layers >= 2 {
		base = strconv.Itoa(m.Layers) + base
	}
	if m.Wide {
		base += "w"
	}

	if m.Layers < 2 && !m.Double && !m.Prime {
		return base, nil
	}

	var b strings.Builder
	b.WriteString(`$\text{`)
	b.WriteString(base)
	b.WriteString(`}`)
	if m.Double {
		b.WriteString(`^{2}`)
	}
	if m.Prime {
		b.WriteString(`'`)
	}
	b.WriteString(`$`)
	return b.String(), nil
}

// escaper rewrites every character LaTeX treats as a control character so it
// displays literally. Backslash must not be escaped as \\ (a line break);
// \textbackslash{} is the displayable form.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape returns text with all LaTeX-special characters escaped.
// Applied to free-text fields such as case names, independently of move
// formatting.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Package cards allocates flashcard records from an algorithm selection.
//
// A card's index is the join key for the whole pipeline: the icon fetcher
// names files by it, the layout engine places it in a page cell, and the
// document assembler resolves it back to content. Indices are 1-based,
// contiguous, and assigned in input order; that order encodes the pedagogical
// grouping of the source tables and is preserved end to end.
package cards

import (
	"github.com/cubedeck/cubedeck/pkg/alg"
	"github.com/cubedeck/cubedeck/pkg/errors"
	"github.com/cubedeck/cubedeck/pkg/latex"
)

// Card joins one algorithm with its card index, rendered icon and formatted
// display text. Immutable after allocation.
type Card struct {
	Index     int           // 1-based position across the whole run
	Algorithm alg.Algorithm // the case this card teaches
	Icon      string        // opaque icon handle (SVG filename), set by the fetcher
	Display   string        // LaTeX-formatted move sequence for the card back
}

// Allocate assigns indices 1..N to the algorithms in input order and formats
// each algorithm's display text.
//
// An empty input returns an INVALID_CONFIG error: zero algorithms means
// there is nothing to lay out, and silently emitting an empty document would
// hide a caller bug. Formatting failures (INVALID_MOVE) abort allocation.
func Allocate(algs []alg.Algorithm) ([]Card, error) {
	if len(algs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "cannot allocate cards for an empty algorithm list")
	}

	out := make([]Card, len(algs))
	for i, a := range algs {
		display, err := latex.FormatMoves(a.Moves)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "algorithm %q", a.Name)
		}
		out[i] = Card{
			Index:     i + 1,
			Algorithm: a,
			Display:   display,
		}
	}
	return out, nil
}

// WithIcons returns a copy of cards with icon handles attached from the
// index-to-handle mapping produced by the fetcher. The mapping may be built
// in any order (fetching is parallel), but it must be complete: a missing
// index returns a MISSING_ICON error rather than letting an iconless card
// reach the document.
func WithIcons(cards []Card, icons map[int]string) ([]Card, error) {
	out := make([]Card, len(cards))
	for i, c := range cards {
		handle, ok := icons[c.Index]
		if !ok || handle == "" {
			return nil, errors.New(errors.ErrCodeMissingIcon, "no icon for card %d (%s)", c.Index, c.Algorithm.Name)
		}
		c.Icon = handle
		out[i] = c
	}
	return out, nil
}

// ByIndex builds the index lookup used by the document assembler.
func ByIndex(cards []Card) map[int]Card {
	m := make(map[int]Card, len(cards))
	for _, c := range cards {
		m[c.Index] = c
	}
	return m
}

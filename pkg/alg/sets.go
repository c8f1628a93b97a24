package alg

import (
	"fmt"
	"path"
	"slices"

	"github.com/cubedeck/cubedeck/pkg/errors"
)

// deckNames maps each set to the Anki deck its cards import into.
var deckNames = map[Set]string{
	SetPLL:        "Cubing::3x3x3::PLL with Arrows",
	SetOLL:        "Cubing::3x3x3::OLL",
	SetTwoLookOLL: "Cubing::3x3x3::2-Look OLL",
	SetBigCube:    "Cubing::NxNxN::Parities and Edge Pairing",
	SetAll:        "Cubing::Algorithms",
}

// setOrder is the order sets appear in listings and in the "all" selection.
var setOrder = []Set{SetPLL, SetOLL, SetTwoLookOLL, SetBigCube}

// Sets returns the selectable set names in listing order, including "all".
func Sets() []Set {
	return append(slices.Clone(setOrder), SetAll)
}

// DeckName returns the Anki deck name for a set.
func DeckName(set Set) string {
	return deckNames[set]
}

// TwoLookOLL derives the 2-look OLL set: the OLL cases tagged "2-Look-OLL",
// renumbered "2LOLL 1".."2LOLL n" in table order.
func TwoLookOLL() []Algorithm {
	var out []Algorithm
	for _, a := range OLL {
		if !slices.Contains(a.Tags, "2-Look-OLL") {
			continue
		}
		a.Name = fmt.Sprintf("2LOLL %d", len(out)+1)
		a.Set = SetTwoLookOLL
		out = append(out, a)
	}
	return out
}

// Select returns the algorithms of the named set in their table order.
// SetAll concatenates every set in listing order. Unknown names return an
// INVALID_SET error.
func Select(set Set) ([]Algorithm, error) {
	switch set {
	case SetPLL:
		return slices.Clone(PLL), nil
	case SetOLL:
		return slices.Clone(OLL), nil
	case SetTwoLookOLL:
		return TwoLookOLL(), nil
	case SetBigCube:
		return slices.Clone(BigCube), nil
	case SetAll:
		var out []Algorithm
		for _, s := range setOrder {
			algs, err := Select(s)
			if err != nil {
				return nil, err
			}
			out = append(out, algs...)
		}
		return out, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidSet,
			"unknown algorithm set %q (valid: pll, oll, 2-look-oll, big-cube, all)", set)
	}
}

// Filter returns the algorithms whose name matches the glob pattern
// (path.Match syntax). An empty or "*" pattern matches everything.
// Returns an INVALID_CONFIG error when nothing matches: an empty selection
// has nothing to lay out and is always a caller mistake.
func Filter(algs []Algorithm, pattern string) ([]Algorithm, error) {
	if pattern == "" || pattern == "*" {
		if len(algs) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "algorithm selection is empty")
		}
		return algs, nil
	}

	var out []Algorithm
	for _, a := range algs {
		ok, err := path.Match(pattern, a.Name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid algorithm pattern %q", pattern)
		}
		if ok {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"pattern %q matches no algorithm in the selected set", pattern)
	}
	return out, nil
}

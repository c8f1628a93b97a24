package alg

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cubedeck/cubedeck/pkg/errors"
)

// Deck is a user-supplied algorithm collection loaded from a TOML file.
type Deck struct {
	Name       string // Anki deck name, e.g. "Cubing::Custom"
	Algorithms []Algorithm
}

// deckFile mirrors the on-disk TOML layout:
//
//	deck = "Cubing::Custom::F2L"
//
//	[[algorithm]]
//	name  = "Sexy move"
//	size  = 3
//	moves = "R U R' U'"
//	tags  = ["3x3x3", "F2L"]
//	view  = "plan"
type deckFile struct {
	Deck      string      `toml:"deck"`
	Algorithm []algorithm `toml:"algorithm"`
}

type algorithm struct {
	Name        string            `toml:"name"`
	Size        int               `toml:"size"`
	Moves       string            `toml:"moves"`
	Tags        []string          `toml:"tags"`
	View        string            `toml:"view"`
	Arrows      []string          `toml:"arrows"`
	Params      map[string]string `toml:"params"`
	SetupBefore string            `toml:"setup_before"`
	SetupAfter  string            `toml:"setup_after"`
}

// LoadDeck reads a custom algorithm deck from a TOML file.
//
// Each [[algorithm]] entry needs a name and a move sequence; size defaults
// to 3 and view to "plan". Move notation is validated with [ParseMoves].
// Returns INVALID_DECK for unreadable or malformed files and INVALID_CONFIG
// for a file that defines no algorithms.
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDeck, err, "read deck file %s", path)
	}

	var file deckFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDeck, err, "parse deck file %s", path)
	}
	if len(file.Algorithm) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "deck file %s defines no algorithms", path)
	}

	deck := &Deck{Name: file.Deck}
	if deck.Name == "" {
		deck.Name = "Cubing::Custom"
	}

	for _, entry := range file.Algorithm {
		a, err := entry.toAlgorithm()
		if err != nil {
			return nil, err
		}
		deck.Algorithms = append(deck.Algorithms, a)
	}
	return deck, nil
}

func (e algorithm) toAlgorithm() (Algorithm, error) {
	if err := errors.ValidateCaseName(e.Name); err != nil {
		return Algorithm{}, err
	}

	moves, err := ParseMoves(e.Moves)
	if err != nil {
		return Algorithm{}, errors.Wrap(errors.ErrCodeInvalidDeck, err, "algorithm %q", e.Name)
	}
	if len(moves) == 0 {
		return Algorithm{}, errors.New(errors.ErrCodeInvalidDeck, "algorithm %q has no moves", e.Name)
	}

	size := e.Size
	if size == 0 {
		size = 3
	}
	if size < 2 {
		return Algorithm{}, errors.New(errors.ErrCodeInvalidDeck, "algorithm %q: invalid cube size %d", e.Name, e.Size)
	}

	view := View(e.View)
	switch view {
	case "", ViewPlan, ViewTrans:
	default:
		return Algorithm{}, errors.New(errors.ErrCodeInvalidDeck, "algorithm %q: unknown view %q", e.Name, e.View)
	}
	if e.View == "" {
		view = ViewPlan
	}

	return Algorithm{
		Name:        e.Name,
		Size:        size,
		Raw:         e.Moves,
		Moves:       moves,
		Set:         SetAll,
		Tags:        e.Tags,
		View:        view,
		Arrows:      e.Arrows,
		Params:      e.Params,
		SetupBefore: e.SetupBefore,
		SetupAfter:  e.SetupAfter,
	}, nil
}

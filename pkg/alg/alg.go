// Package alg defines the algorithm data model for cube flashcards.
//
// An [Algorithm] pairs a named cube case (e.g. PLL "T", OLL 21) with its move
// sequence and the metadata needed to render an icon for it: puzzle size,
// visualiser view, arrow overlays, and facelet masks. The built-in tables
// (PLL, OLL, 2-look OLL, big-cube) live in this package; user-supplied decks
// are loaded from TOML files via [LoadDeck].
//
// Move notation is parsed into [Move] tokens by [ParseMoves]. The raw string
// is kept alongside the parsed form: exports that show notation to humans
// (Anki rows) use the raw string, while the LaTeX formatter works on tokens.
package alg

import "strings"

// Set identifies one of the algorithm families a deck can be built from.
type Set string

// Known algorithm sets. SetAll selects the concatenation of all others.
const (
	SetPLL        Set = "pll"
	SetOLL        Set = "oll"
	SetTwoLookOLL Set = "2-look-oll"
	SetBigCube    Set = "big-cube"
	SetAll        Set = "all"
)

// View selects the cube projection the visualiser renders.
// An empty view lets the visualiser pick its default 3D projection.
type View string

// Supported visualiser views.
const (
	ViewPlan  View = "plan"  // top-down, used for last-layer cases
	ViewTrans View = "trans" // transparent 3D
)

// FrontColour identifies the face a front-based algorithm is executed from.
type FrontColour string

// Front face colours for big-cube edge pairing cases.
const (
	FrontRed    FrontColour = "RED"
	FrontBlue   FrontColour = "BLUE"
	FrontOrange FrontColour = "ORANGE"
	FrontGreen  FrontColour = "GREEN"
)

// yRotations maps a front colour to the y rotation that brings the blue face
// to that position. Used to build setup rotations for front-based cases.
var yRotations = map[FrontColour]string{
	FrontRed:    "y",
	FrontBlue:   "",
	FrontOrange: "y'",
	FrontGreen:  "y2",
}

// Algorithm is one flashcard case: a named move sequence plus the metadata
// needed to render its icon. Values are immutable once constructed; a
// generation run never mutates them.
type Algorithm struct {
	Name  string // case label, e.g. "Aa", "OCLL1 - 21", "4x4x4 PLL Parity"
	Size  int    // puzzle size (3 for 3x3x3, 4, 5, ...)
	Raw   string // human-readable notation as written, parens and all
	Moves []Move // parsed tokens of Raw
	Set   Set    // family this case belongs to
	Tags  []string

	// Icon rendering metadata, passed through to the visualiser.
	View   View
	Arrows []string          // permutation arrows, e.g. "U0U2-s8"
	Params map[string]string // extra query params (sch, fc facelet masks)

	// The visualiser renders the cube that the algorithm solves, starting
	// from yellow-top blue-front. Whole-cube rotations inside the sequence
	// leave the rendered cube in a different orientation, so setup rotations
	// restore a consistent starting view. They never appear on cards.
	SetupBefore string
	SetupAfter  string
}

// Visualiser returns the move sequence sent to the rendering service:
// the human sequence wrapped in its setup rotations.
func (a Algorithm) Visualiser() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.SetupBefore, a.Raw, a.SetupAfter} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// WithTags returns a copy of the algorithm with extra tags appended.
func (a Algorithm) WithTags(tags ...string) Algorithm {
	merged := make([]string, 0, len(a.Tags)+len(tags))
	merged = append(merged, a.Tags...)
	merged = append(merged, tags...)
	a.Tags = merged
	return a
}

// mustAlg parses raw notation and panics on failure. Only used for the
// built-in tables, which are fixed at compile time.
func mustAlg(a Algorithm) Algorithm {
	moves, err := ParseMoves(a.Raw)
	if err != nil {
		panic("alg: built-in table entry " + a.Name + ": " + err.Error())
	}
	a.Moves = moves
	return a
}

// oll builds a standard OLL table entry: 3x3x3, plan view, yellow-only
// colour scheme so the icon shows orientation rather than permutation.
func oll(name, raw string) Algorithm {
	return mustAlg(Algorithm{
		Name:   name,
		Size:   3,
		Raw:    raw,
		Set:    SetOLL,
		Tags:   []string{"3x3x3", "OLL"},
		View:   ViewPlan,
		Params: map[string]string{"sch": "ysssss"},
	})
}

// pll builds a standard PLL table entry: 3x3x3, plan view, full colour
// scheme with permutation arrows.
func pll(name, raw string, arrows []string, setupAfter string) Algorithm {
	return mustAlg(Algorithm{
		Name:       name,
		Size:       3,
		Raw:        raw,
		Set:        SetPLL,
		Tags:       []string{"3x3x3", "PLL"},
		View:       ViewPlan,
		Arrows:     arrows,
		SetupAfter: setupAfter,
	})
}

// front builds a big-cube entry executed from a given front face. The icon
// must show that face, so the visualiser sequence starts with x' (front to
// top, where plan view shows it) and undoes the y rotation at the end.
func front(name string, size int, raw string, colour FrontColour, tags []string, fc string) Algorithm {
	setupAfter := ""
	if rot := yRotations[colour]; rot != "" {
		setupAfter = rot + "'"
	}
	return mustAlg(Algorithm{
		Name:        name,
		Size:        size,
		Raw:         raw,
		Set:         SetBigCube,
		Tags:        tags,
		View:        ViewPlan,
		Params:      map[string]string{"fc": fc},
		SetupBefore: "x'",
		SetupAfter:  setupAfter,
	})
}

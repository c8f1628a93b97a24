package cards

import (
	"testing"

	"github.com/cubedeck/cubedeck/pkg/alg"
	"github.com/cubedeck/cubedeck/pkg/errors"
)

func testAlgs(t *testing.T, raws ...string) []alg.Algorithm {
	t.Helper()
	out := make([]alg.Algorithm, len(raws))
	for i, raw := range raws {
		moves, err := alg.ParseMoves(raw)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = alg.Algorithm{Name: string(rune('A' + i)), Size: 3, Raw: raw, Moves: moves}
	}
	return out
}

func TestAllocate(t *testing.T) {
	algs := testAlgs(t, "R U R' U'", "F2 U'", "R")

	cardSet, err := Allocate(algs)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	if len(cardSet) != 3 {
		t.Fatalf("got %d cards, want 3", len(cardSet))
	}

	for i, c := range cardSet {
		if c.Index != i+1 {
			t.Errorf("card %d has index %d, want %d", i, c.Index, i+1)
		}
		if c.Algorithm.Name != algs[i].Name {
			t.Errorf("card %d holds algorithm %q, want %q", i, c.Algorithm.Name, algs[i].Name)
		}
		if c.Display == "" {
			t.Errorf("card %d has empty display text", i)
		}
		if c.Icon != "" {
			t.Errorf("card %d already carries icon %q", i, c.Icon)
		}
	}

	if cardSet[1].Display != `$\text{F}^{2}$ $\text{U}'$` {
		t.Errorf("card 2 display = %q", cardSet[1].Display)
	}
}

func TestAllocateEmpty(t *testing.T) {
	for _, algs := range [][]alg.Algorithm{nil, {}} {
		if _, err := Allocate(algs); !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("Allocate(%v) error code = %v, want INVALID_CONFIG", algs, errors.GetCode(err))
		}
	}
}

func TestAllocateBadMove(t *testing.T) {
	algs := []alg.Algorithm{{
		Name:  "Broken",
		Moves: []alg.Move{{Base: "R", Double: true, Prime: true}},
	}}
	_, err := Allocate(algs)
	if !errors.Is(err, errors.ErrCodeInvalidMove) {
		t.Errorf("error code = %v, want INVALID_MOVE", errors.GetCode(err))
	}
}

func TestWithIcons(t *testing.T) {
	cardSet, err := Allocate(testAlgs(t, "R", "U"))
	if err != nil {
		t.Fatal(err)
	}

	// Mapping order must not matter.
	icons := map[int]string{2: "icon-02.svg", 1: "icon-01.svg"}
	got, err := WithIcons(cardSet, icons)
	if err != nil {
		t.Fatalf("WithIcons() failed: %v", err)
	}
	for i, c := range got {
		if want := icons[c.Index]; c.Icon != want {
			t.Errorf("card %d icon = %q, want %q", i, c.Icon, want)
		}
	}

	// Input must stay untouched.
	for i, c := range cardSet {
		if c.Icon != "" {
			t.Errorf("input card %d was mutated: icon %q", i, c.Icon)
		}
	}
}

func TestWithIconsMissing(t *testing.T) {
	cardSet, err := Allocate(testAlgs(t, "R", "U"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		icons map[int]string
	}{
		{"absent index", map[int]string{1: "icon-01.svg"}},
		{"empty handle", map[int]string{1: "icon-01.svg", 2: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := WithIcons(cardSet, tt.icons); !errors.Is(err, errors.ErrCodeMissingIcon) {
				t.Errorf("error code = %v, want MISSING_ICON", errors.GetCode(err))
			}
		})
	}
}

func TestByIndex(t *testing.T) {
	cardSet, err := Allocate(testAlgs(t, "R", "U", "F"))
	if err != nil {
		t.Fatal(err)
	}

	m := ByIndex(cardSet)
	if len(m) != 3 {
		t.Fatalf("map has %d entries, want 3", len(m))
	}
	for _, c := range cardSet {
		if got := m[c.Index]; got.Algorithm.Name != c.Algorithm.Name {
			t.Errorf("m[%d] = %q, want %q", c.Index, got.Algorithm.Name, c.Algorithm.Name)
		}
	}
}

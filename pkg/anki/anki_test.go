package anki

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cubedeck/cubedeck/pkg/alg"
	"github.com/cubedeck/cubedeck/pkg/cards"
	"github.com/cubedeck/cubedeck/pkg/errors"
)

func testCardSet(t *testing.T) []cards.Card {
	t.Helper()
	moves, err := alg.ParseMoves("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	cardSet, err := cards.Allocate([]alg.Algorithm{
		{Name: "Aa", Size: 3, Raw: "x (R' U R') D2 (R U' R') D2 R2 x'", Moves: moves, Tags: []string{"3x3x3", "PLL"}},
		{Name: "T", Size: 3, Raw: "R U R' U'", Moves: moves, Tags: []string{"3x3x3", "PLL"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	cardSet, err = cards.WithIcons(cardSet, map[int]string{1: "icon-01.svg", 2: "icon-02.svg"})
	if err != nil {
		t.Fatal(err)
	}
	return cardSet
}

func TestWrite(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, "Cubing::3x3x3::PLL with Arrows", testCardSet(t)); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), b.String())
	}

	wantHeaders := []string{
		"#separator:tab",
		"#notetype:cubingalg+",
		"#deck:Cubing::3x3x3::PLL with Arrows",
	}
	for i, want := range wantHeaders {
		if lines[i] != want {
			t.Errorf("header %d = %q, want %q", i, lines[i], want)
		}
	}

	row := strings.Split(lines[3], "\t")
	if len(row) != 4 {
		t.Fatalf("row has %d fields, want 4: %q", len(row), lines[3])
	}
	if row[0] != `<img src="icon-01.svg">` {
		t.Errorf("icon field = %q", row[0])
	}
	if row[1] != "Aa" {
		t.Errorf("name field = %q", row[1])
	}
	if row[2] != "x (R' U R') D2 (R U' R') D2 R2 x'" {
		t.Errorf("algorithm field = %q, want the raw human notation", row[2])
	}
	if row[3] != "3x3x3 PLL" {
		t.Errorf("tags field = %q", row[3])
	}
}

func TestWriteMissingIcon(t *testing.T) {
	cardSet := testCardSet(t)
	cardSet[1].Icon = ""

	var b strings.Builder
	err := Write(&b, "Cubing::Test", cardSet)
	if !errors.Is(err, errors.ErrCodeMissingIcon) {
		t.Errorf("error code = %v, want MISSING_ICON", errors.GetCode(err))
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	path, err := Export(dir, "Cubing::Test", testCardSet(t))
	if err != nil {
		t.Fatalf("Export() failed: %v", err)
	}
	if path != filepath.Join(dir, Filename) {
		t.Errorf("Export() path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "#separator:tab\n") {
		t.Error("exported file missing the separator directive")
	}
}

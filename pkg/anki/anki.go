// Package anki exports a card set as an Anki import file.
//
// The format is Anki's tab-separated import with # directives in place of a
// header row: a real header line would be imported as a card. One row per
// card carries the icon as an HTML img reference, the case name, the raw
// human-readable algorithm, and space-separated tags.
package anki

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cubedeck/cubedeck/pkg/cards"
	"github.com/cubedeck/cubedeck/pkg/errors"
)

// Filename is the default export file name inside the target directory.
const Filename = "ankiCardSet.csv"

// noteType is the Anki note type the rows import into.
const noteType = "cubingalg+"

// Write serializes the card set for deck to w.
// Every card must already carry an icon handle; a card without one returns
// a MISSING_ICON error since its row would import with a broken image.
func Write(w io.Writer, deck string, cardSet []cards.Card) error {
	if _, err := fmt.Fprintf(w, "#separator:tab\n#notetype:%s\n#deck:%s\n", noteType, deck); err != nil {
		return err
	}

	for _, c := range cardSet {
		if c.Icon == "" {
			return errors.New(errors.ErrCodeMissingIcon, "card %d (%s) has no icon handle", c.Index, c.Algorithm.Name)
		}
		row := []string{
			fmt.Sprintf("<img src=%q>", c.Icon),
			c.Algorithm.Name,
			c.Algorithm.Raw,
			strings.Join(c.Algorithm.Tags, " "),
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// Export writes the deck export to Filename inside dir.
// This is a convenience wrapper around [Write] for file-based output.
func Export(dir, deck string, cardSet []cards.Card) (string, error) {
	path := filepath.Join(dir, Filename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Write(f, deck, cardSet); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

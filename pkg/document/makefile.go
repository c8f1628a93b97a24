package document

import (
	"os"
	"path/filepath"
)

// MakefileName is the name of the generated build file.
const MakefileName = "Makefile"

// makefile builds the printable PDF from the generated artifacts: every
// icon SVG is converted to PDF with rsvg-convert, then latexmk drives the
// LaTeX run. Kept self-contained so the output directory builds with plain
// `make` and no further tooling.
const makefile = `ICONS := $(wildcard icon-*.svg)
PDFS  := $(ICONS:.svg=.pdf)

all: Lernkarten.pdf

%.pdf: %.svg
	rsvg-convert --format=pdf --output=$@ $<

Lernkarten.pdf: Lernkarten.tex $(PDFS)
	latexmk -pdf -interaction=nonstopmode Lernkarten.tex

clean:
	latexmk -C Lernkarten.tex
	rm -f $(PDFS)

.PHONY: all clean
`

// WriteMakefile writes the build Makefile into dir.
func WriteMakefile(dir string) error {
	return os.WriteFile(filepath.Join(dir, MakefileName), []byte(makefile), 0o644)
}

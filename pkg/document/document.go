// Package document serializes computed page layouts into the printable
// LaTeX card document.
//
// Layout computation (pkg/layout) and text emission are deliberately
// separate passes: the assembler walks an already-computed cell structure
// and only decides how each cell is written. Cells reference icons by file
// handle and algorithms by their preformatted display text; the document
// never recomputes positions and carries no counters.
package document

import (
	"fmt"
	"path"
	"strings"

	"github.com/cubedeck/cubedeck/pkg/cards"
	"github.com/cubedeck/cubedeck/pkg/errors"
	"github.com/cubedeck/cubedeck/pkg/latex"
	"github.com/cubedeck/cubedeck/pkg/layout"
)

// Filename is the name of the generated LaTeX document.
const Filename = "Lernkarten.tex"

// preamble sets up the card page geometry and the two cell commands.
// Icons are included by basename; the Makefile converts each SVG icon to a
// PDF of the same basename for pdflatex to pick up.
const preamble = `\documentclass[a4paper]{scrartcl}
\usepackage{graphicx}
\usepackage{amsmath}
\usepackage[margin=1cm]{geometry}
\pagestyle{empty}
\setlength{\parindent}{0pt}

\newlength{\cellwidth}
\setlength{\cellwidth}{0.31\textwidth}
\newlength{\iconwidth}
\setlength{\iconwidth}{0.85\cellwidth}

% #1: icon file basename
\newcommand{\cubefront}[1]{\centering\includegraphics[width=\iconwidth]{#1}}
% #1: case name, #2: formatted algorithm
\newcommand{\cubeback}[2]{\textbf{\small #1}\\[2pt]#2}

\begin{document}
`

const closing = `\end{document}
`

// Assemble serializes page pairs into a complete LaTeX document.
//
// For each pair it emits the front page (icon cells) followed by its back
// page (algorithm cells), so the output stream alternates front(i), back(i).
// Empty cells stay blank but keep the table rectangular. Every non-empty
// cell index must resolve through byIndex; a miss means the allocator and
// the layout engine disagree about which cards exist, and assembly aborts
// with MISSING_RECORD rather than print a misaligned deck.
func Assemble(pairs []layout.PagePair, byIndex map[int]cards.Card) ([]byte, error) {
	var b strings.Builder
	b.WriteString(preamble)

	for i, pair := range pairs {
		if err := writePage(&b, pair.Front, byIndex, frontCell); err != nil {
			return nil, err
		}
		b.WriteString("\\newpage\n\n")
		if err := writePage(&b, pair.Back, byIndex, backCell); err != nil {
			return nil, err
		}
		if i < len(pairs)-1 {
			b.WriteString("\\newpage\n\n")
		}
	}

	b.WriteString(closing)
	return []byte(b.String()), nil
}

// writePage emits one page as a bordered tabular, rendering each occupied
// cell with the given cell function.
func writePage(b *strings.Builder, p layout.Page, byIndex map[int]cards.Card, cell func(cards.Card) string) error {
	b.WriteString("\\begin{center}\n")
	fmt.Fprintf(b, "\\begin{tabular}{|%s}\n", strings.Repeat("p{\\cellwidth}|", p.Cols))
	b.WriteString("\\hline\n")

	for r := 0; r < p.Rows; r++ {
		cells := make([]string, p.Cols)
		for c := 0; c < p.Cols; c++ {
			idx := p.Cell(r, c)
			if idx == layout.Empty {
				continue
			}
			card, ok := byIndex[idx]
			if !ok {
				return errors.New(errors.ErrCodeMissingRecord,
					"page cell (%d,%d) references card %d, which was never allocated", r, c, idx)
			}
			cells[c] = cell(card)
		}
		b.WriteString(strings.Join(cells, " & "))
		b.WriteString(" \\\\\\hline\n")
	}

	b.WriteString("\\end{tabular}\n")
	b.WriteString("\\end{center}\n")
	return nil
}

// frontCell renders an icon cell. The icon handle keeps its extension on
// disk; graphicx resolves the basename against the converted PDF.
func frontCell(c cards.Card) string {
	base := strings.TrimSuffix(c.Icon, path.Ext(c.Icon))
	return fmt.Sprintf("\\cubefront{%s}", base)
}

// backCell renders an algorithm cell: escaped case name above the
// preformatted move sequence.
func backCell(c cards.Card) string {
	return fmt.Sprintf("\\cubeback{%s}{%s}", latex.Escape(c.Algorithm.Name), c.Display)
}

// Package layout computes the page placement for double-sided card printing.
//
// Cards are arranged on front pages in reading order and on the paired back
// pages in per-row mirrored order. The mirror is what makes double-sided
// printing work: after the sheet is flipped along its long edge and cut,
// every icon lines up with its algorithm on the reverse of the same physical
// card.
//
// The whole computation is pure index arithmetic over (total, rows, cols).
// There is no counter state carried between pages; every cell's content
// follows from its block start and grid position alone, which keeps partial
// final pages and mirroring independently checkable.
package layout

import (
	"github.com/cubedeck/cubedeck/pkg/errors"
)

// Empty marks a cell with no card. Valid card indices start at 1.
const Empty = 0

// Page is a rows x cols grid of card indices in row-major order.
// A cell holds either a 1-based card index or [Empty].
type Page struct {
	Rows  int
	Cols  int
	Cells []int // len == Rows*Cols, row-major
}

// Cell returns the card index at (r, c), 0-based.
func (p Page) Cell(r, c int) int {
	return p.Cells[r*p.Cols+c]
}

// PagePair is a front page and its mirrored back page covering the same
// contiguous block of cards. Start is the block's first card index.
type PagePair struct {
	Start int
	Front Page
	Back  Page
}

// Pages partitions card indices [1, total] into page pairs for a rows x cols
// grid.
//
// Each block of rows*cols consecutive indices becomes one pair: the front
// page holds the block in reading order (cell (r,c) holds block offset
// r*cols+c), and the back page mirrors each row independently (cell (r,c)
// holds the front's cell (r, cols-1-c)). The final block may be short; its
// pages still have the full rows x cols shape, with trailing empty front
// cells becoming leading empty back cells in the same row, exactly where the
// paper flip puts them.
//
// Blocks are emitted in ascending start order. Invalid dimensions or a
// non-positive total return an INVALID_CONFIG error.
func Pages(total, rows, cols int) ([]PagePair, error) {
	if err := errors.ValidateGrid(rows, cols); err != nil {
		return nil, err
	}
	if total < 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "card count must be at least 1, got %d", total)
	}

	perPage := rows * cols
	pairs := make([]PagePair, 0, (total+perPage-1)/perPage)
	for start := 1; start <= total; start += perPage {
		count := min(perPage, total-start+1)
		pairs = append(pairs, pagePair(start, count, rows, cols))
	}
	return pairs, nil
}

// pagePair builds one front/back pair for the block [start, start+count-1].
func pagePair(start, count, rows, cols int) PagePair {
	front := newPage(rows, cols)
	back := newPage(rows, cols)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			offset := r*cols + c
			if offset >= count {
				continue
			}
			front.Cells[r*cols+c] = start + offset
			back.Cells[r*cols+(cols-1-c)] = start + offset
		}
	}

	return PagePair{Start: start, Front: front, Back: back}
}

func newPage(rows, cols int) Page {
	return Page{Rows: rows, Cols: cols, Cells: make([]int, rows*cols)}
}

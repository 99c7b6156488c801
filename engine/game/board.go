package game

import "github.com/kuredoro/termsnake/core"

// Board is the arena in screen columns and rows. Walls take the outermost
// cell ring: the first and last cell of every row and the first and last
// row.
type Board struct {
	Width, Height int
}

const (
	MinWidth  = 10
	MinHeight = 5
)

// NewBoard fits a board into a terminal of the given size, capped at
// maxW by maxH. The width is rounded down to a whole number of cells.
// ok is false when the result is too small to play on.
func NewBoard(termW, termH, maxW, maxH int) (b Board, ok bool) {
	w, h := termW, termH
	if w > maxW {
		w = maxW
	}
	if h > maxH {
		h = maxH
	}

	w -= w % core.CellWidth

	b = Board{Width: w, Height: h}
	return b, w >= MinWidth && h >= MinHeight
}

// IsWall reports whether p lies outside the interior.
func (b Board) IsWall(p core.Position) bool {
	return p.X < core.CellWidth || p.X >= b.Width-core.CellWidth ||
		p.Y < 1 || p.Y >= b.Height-1
}

// Cells returns the interior size in cells.
func (b Board) Cells() (cols, rows int) {
	return b.Width/core.CellWidth - 2, b.Height - 2
}

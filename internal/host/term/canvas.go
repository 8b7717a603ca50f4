// Package term provides a character-cell canvas, for rendering a ruler into a
// terminal.
//
// Pixel coordinates are mapped onto cells, PixelsPerColumn pixels per column
// and PixelsPerRow pixels per row.
package term

import (
	"github.com/ja-he/timeruler/internal/host"
	"github.com/ja-he/timeruler/internal/ruler"
)

const (
	PixelsPerColumn = 10
	PixelsPerRow    = 10
)

// ColumnOf returns the column a pixel x-coordinate falls into.
// Negative coordinates round down, so that columns stay evenly sized.
func ColumnOf(px int) int { return floorDiv(px, PixelsPerColumn) }

// RowOf returns the row a pixel y-coordinate falls into.
func RowOf(px int) int { return floorDiv(px, PixelsPerRow) }

// PixelOfColumn returns the pixel x-coordinate of the left edge of a column.
func PixelOfColumn(col int) int { return col * PixelsPerColumn }

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Cell is a single character cell of the canvas. The zero Cell is blank.
type Cell struct {
	Ch    rune
	Color string
}

// Canvas is a ruler.Canvas drawing into a grid of cells.
type Canvas struct {
	host.CanvasBase

	cells [][]Cell
	ctx   context
}

// NewCanvas returns a new, empty cell canvas.
func NewCanvas() *Canvas {
	c := &Canvas{}
	c.ctx.canvas = c
	return c
}

// SetIntrinsicSize sets the size in pixels and reallocates (clears) the cells.
func (c *Canvas) SetIntrinsicSize(w, h int) {
	c.CanvasBase.SetIntrinsicSize(w, h)
	cols := ColumnOf(w) + 1
	rows := RowOf(h)
	c.cells = make([][]Cell, rows)
	for row := range c.cells {
		c.cells[row] = make([]Cell, cols)
	}
}

// Contains reports whether the viewport x-coordinate lies on the canvas.
func (c *Canvas) Contains(x int) bool {
	w, _ := c.IntrinsicSize()
	return x >= c.Left() && x < c.Left()+w+PixelsPerColumn
}

// Context2D returns the drawing context of the canvas.
func (c *Canvas) Context2D() ruler.Context2D { return &c.ctx }

// Dimensions returns the size of the canvas in cells.
func (c *Canvas) Dimensions() (cols, rows int) {
	if len(c.cells) == 0 {
		return 0, 0
	}
	return len(c.cells[0]), len(c.cells)
}

// At returns the cell at the given column and row, or a blank cell if out of
// bounds.
func (c *Canvas) At(col, row int) Cell {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return Cell{}
	}
	return c.cells[row][col]
}

// LeftColumn returns the column of the viewport the canvas starts at.
func (c *Canvas) LeftColumn() int { return ColumnOf(c.Left()) }

// RowString returns the runes of a row, blanks as spaces; mainly for
// debugging and tests.
func (c *Canvas) RowString(row int) string {
	cols, _ := c.Dimensions()
	runes := make([]rune, cols)
	for col := range runes {
		ch := c.At(col, row).Ch
		if ch == 0 {
			ch = ' '
		}
		runes[col] = ch
	}
	return string(runes)
}

func (c *Canvas) set(col, row int, cell Cell) {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = cell
}

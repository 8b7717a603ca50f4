package term

import (
	"github.com/rs/zerolog/log"
)

type point struct{ x, y int }

type segment struct{ from, to point }

// context implements ruler.Context2D on a Canvas. Fonts and line widths do
// not exist on a cell grid and are ignored.
type context struct {
	canvas *Canvas

	path   []segment
	cursor *point
	stroke string
}

func (c *context) BeginPath() {
	c.path = nil
	c.cursor = nil
}

func (c *context) MoveTo(x, y int) {
	c.cursor = &point{x, y}
}

func (c *context) LineTo(x, y int) {
	p := point{x, y}
	if c.cursor != nil {
		c.path = append(c.path, segment{*c.cursor, p})
	}
	c.cursor = &p
}

// Stroke paints all segments of the current path in the current stroke style.
func (c *context) Stroke() {
	for _, s := range c.path {
		c.strokeSegment(s)
	}
}

func (c *context) strokeSegment(s segment) {
	fromCol, toCol := ColumnOf(s.from.x), ColumnOf(s.to.x)
	fromRow, toRow := rowSpan(s.from.y, s.to.y)

	switch {
	case fromCol == toCol:
		for row := fromRow; row <= toRow; row++ {
			c.canvas.set(fromCol, row, Cell{Ch: '│', Color: c.stroke})
		}
	case fromRow == toRow:
		if fromCol > toCol {
			fromCol, toCol = toCol, fromCol
		}
		for col := fromCol; col <= toCol; col++ {
			c.canvas.set(col, fromRow, Cell{Ch: '─', Color: c.stroke})
		}
	default:
		fromRow, toRow = RowOf(s.from.y), RowOf(s.to.y)
		log.Trace().Int("from-col", fromCol).Int("to-col", toCol).Int("from-row", fromRow).Int("to-row", toRow).Msg("approximating diagonal segment")
		steps := abs(toCol - fromCol)
		if rows := abs(toRow - fromRow); rows > steps {
			steps = rows
		}
		for i := 0; i <= steps; i++ {
			col := fromCol + (toCol-fromCol)*i/steps
			row := fromRow + (toRow-fromRow)*i/steps
			c.canvas.set(col, row, Cell{Ch: '·', Color: c.stroke})
		}
	}
}

// rowSpan returns the rows covered by the pixel span [a,b] (in either order),
// where the larger end is exclusive, as a line ending at the baseline must
// not spill into the row below.
func rowSpan(a, b int) (from, to int) {
	if a > b {
		a, b = b, a
	}
	if a == b {
		return RowOf(a), RowOf(a)
	}
	return RowOf(a), RowOf(b - 1)
}

func (c *context) ClearRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := RowOf(y); row <= RowOf(y+h-1); row++ {
		for col := ColumnOf(x); col <= ColumnOf(x+w-1); col++ {
			c.canvas.set(col, row, Cell{})
		}
	}
}

// SetFont is a no-op, cells have a single font.
func (c *context) SetFont(string) {}

// SetLineWidth is a no-op, strokes are always one cell wide.
func (c *context) SetLineWidth(int) {}

func (c *context) SetStrokeStyle(color string) { c.stroke = color }

// StrokeText writes the text starting at the column of x, on the row right
// above y (the text's baseline).
func (c *context) StrokeText(text string, x, y int) {
	row := RowOf(y) - 1
	col := ColumnOf(x)
	for _, r := range text {
		c.canvas.set(col, row, Cell{Ch: r, Color: c.stroke})
		col++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

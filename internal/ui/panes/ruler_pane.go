package panes

import (
	"github.com/ja-he/timeruler/internal/host/term"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
)

// RulerPane shows a ruler's cell canvas at the canvas' current left offset,
// optionally highlighting the column under the mouse cursor.
type RulerPane struct {
	ui.LeafPane

	canvas       *term.Canvas
	timeAt       func(px int) int
	cursorColumn func() (col int, ok bool)
}

// Draw draws the visible part of the canvas over the ruler background.
func (p *RulerPane) Draw() {
	x, y, w, h := p.Dimensions()
	bg := p.Stylesheet.RulerBackground

	p.Renderer.DrawBox(x, y, w, h, bg)

	cols, rows := p.canvas.Dimensions()
	left := p.canvas.LeftColumn()

	// only the columns of the canvas that are on screen
	first, last := 0, cols-1
	if -left > first {
		first = -left
	}
	if w-1-left < last {
		last = w - 1 - left
	}

	for row := 0; row < rows && row < h; row++ {
		for col := first; col <= last; col++ {
			cell := p.canvas.At(col, row)
			if cell.Ch == 0 {
				continue
			}
			p.Renderer.DrawText(x+left+col, y+row, 1, 1, bg.WithForeground(cell.Color), string(cell.Ch))
		}
	}

	if col, ok := p.cursorColumn(); ok && col >= x && col < x+w {
		for row := 0; row < h; row++ {
			p.Renderer.DrawBox(col, y+row, 1, 1, p.Stylesheet.RulerCursor)
			if cell := p.canvas.At(col-x-left, row); cell.Ch != 0 {
				p.Renderer.DrawText(col, y+row, 1, 1, p.Stylesheet.RulerCursor, string(cell.Ch))
			}
		}
	}
}

// GetPositionInfo returns the time shown at the given position.
func (p *RulerPane) GetPositionInfo(x, y int) ui.PositionInfo {
	paneX, _, _, _ := p.Dimensions()
	px := term.PixelOfColumn(x - paneX)
	return ui.RulerPanePositionInfo{
		Time:     p.timeAt(px),
		OnCanvas: p.canvas.Contains(px),
	}
}

// NewRulerPane constructs and returns a new RulerPane.
func NewRulerPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	canvas *term.Canvas,
	timeAt func(px int) int,
	cursorColumn func() (col int, ok bool),
) *RulerPane {
	return &RulerPane{
		LeafPane: ui.LeafPane{
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		canvas:       canvas,
		timeAt:       timeAt,
		cursorColumn: cursorColumn,
	}
}

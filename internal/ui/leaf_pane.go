package ui

import (
	"github.com/ja-he/timeruler/internal/styling"
)

// LeafPane is a simple set of data and implementation of a "leaf pane", i.E. a
// pane that does not have subpanes but instead makes actual draw calls.
type LeafPane struct {
	Renderer   ConstrainedRenderer
	Dims       func() (x, y, w, h int)
	Stylesheet styling.Stylesheet
	Visible    func() bool
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *LeafPane) Dimensions() (x, y, w, h int) {
	return p.Dims()
}

// IsVisible indicates whether the pane is visible.
func (p *LeafPane) IsVisible() bool { return p.Visible == nil || p.Visible() }

// Rect is a rectangle on the UI's x-y-plane.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns the rectangle of the given dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains returns whether the rectangle contains the given position.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

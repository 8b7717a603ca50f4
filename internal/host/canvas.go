package host

import (
	"github.com/ja-he/timeruler/internal/ruler"
)

// CanvasBase is the element state every canvas implementation shares:
// intrinsic size, presentation style, rendered left offset and pointer-down
// listeners.
//
// Embed it and add a Context2D method to get a ruler.Canvas.
type CanvasBase struct {
	width, height int
	style         ruler.Style
	left          int

	downListeners []func(ruler.PointerEvent)
}

// SetIntrinsicSize sets the drawing size of the canvas.
func (c *CanvasBase) SetIntrinsicSize(w, h int) {
	c.width, c.height = w, h
}

// IntrinsicSize returns the drawing size of the canvas.
func (c *CanvasBase) IntrinsicSize() (w, h int) { return c.width, c.height }

// ApplyStyle sets the presentation style, including the left offset.
func (c *CanvasBase) ApplyStyle(s ruler.Style) {
	c.style = s
	c.left = s.Left
}

// Style returns the presentation style as last applied.
func (c *CanvasBase) Style() ruler.Style {
	s := c.style
	s.Left = c.left
	return s
}

// SetLeft moves the canvas to the given left offset.
func (c *CanvasBase) SetLeft(px int) { c.left = px }

// Left returns the canvas' left offset.
func (c *CanvasBase) Left() int { return c.left }

// Contains reports whether the viewport x-coordinate lies on the canvas.
func (c *CanvasBase) Contains(x int) bool {
	return x >= c.left && x < c.left+c.width
}

// OnPointerDown subscribes to pointer-down events on this canvas.
func (c *CanvasBase) OnPointerDown(f func(ruler.PointerEvent)) {
	c.downListeners = append(c.downListeners, f)
}

// DispatchPointerDown delivers the event to the canvas' listeners.
func (c *CanvasBase) DispatchPointerDown(e ruler.PointerEvent) {
	for _, f := range c.downListeners {
		f(e)
	}
}

// Text is a non-drawable element, e.g., a label in the hosting document.
type Text struct {
	Content string
}

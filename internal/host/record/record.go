// Package record provides a canvas that records all drawing calls instead of
// drawing them.
package record

import (
	"fmt"

	"github.com/ja-he/timeruler/internal/host"
	"github.com/ja-he/timeruler/internal/ruler"
)

// OpKind is the kind of a recorded drawing call.
type OpKind int

const (
	_ OpKind = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpStroke
	OpClearRect
	OpSetFont
	OpStrokeText
	OpSetLineWidth
	OpSetStrokeStyle
)

// Op is a single recorded drawing call.
// Which fields are set depends on the kind.
type Op struct {
	Kind       OpKind
	X, Y, W, H int
	Text       string
}

func (o Op) String() string {
	switch o.Kind {
	case OpBeginPath:
		return "beginPath()"
	case OpMoveTo:
		return fmt.Sprintf("moveTo(%d,%d)", o.X, o.Y)
	case OpLineTo:
		return fmt.Sprintf("lineTo(%d,%d)", o.X, o.Y)
	case OpStroke:
		return "stroke()"
	case OpClearRect:
		return fmt.Sprintf("clearRect(%d,%d,%d,%d)", o.X, o.Y, o.W, o.H)
	case OpSetFont:
		return fmt.Sprintf("font=%s", o.Text)
	case OpStrokeText:
		return fmt.Sprintf("strokeText('%s',%d,%d)", o.Text, o.X, o.Y)
	case OpSetLineWidth:
		return fmt.Sprintf("lineWidth=%d", o.W)
	case OpSetStrokeStyle:
		return fmt.Sprintf("strokeStyle=%s", o.Text)
	}
	return "[unknown op]"
}

// Context is a ruler.Context2D recording every call.
type Context struct {
	Ops []Op
}

func (c *Context) add(op Op) { c.Ops = append(c.Ops, op) }

func (c *Context) BeginPath()               { c.add(Op{Kind: OpBeginPath}) }
func (c *Context) MoveTo(x, y int)          { c.add(Op{Kind: OpMoveTo, X: x, Y: y}) }
func (c *Context) LineTo(x, y int)          { c.add(Op{Kind: OpLineTo, X: x, Y: y}) }
func (c *Context) Stroke()                  { c.add(Op{Kind: OpStroke}) }
func (c *Context) ClearRect(x, y, w, h int) { c.add(Op{Kind: OpClearRect, X: x, Y: y, W: w, H: h}) }
func (c *Context) SetFont(font string)      { c.add(Op{Kind: OpSetFont, Text: font}) }
func (c *Context) SetLineWidth(w int)       { c.add(Op{Kind: OpSetLineWidth, W: w}) }
func (c *Context) SetStrokeStyle(s string)  { c.add(Op{Kind: OpSetStrokeStyle, Text: s}) }
func (c *Context) StrokeText(text string, x, y int) {
	c.add(Op{Kind: OpStrokeText, Text: text, X: x, Y: y})
}

// Filter returns all recorded ops of the given kind, in order.
func (c *Context) Filter(kind OpKind) []Op {
	result := []Op{}
	for _, op := range c.Ops {
		if op.Kind == kind {
			result = append(result, op)
		}
	}
	return result
}

// Reset drops all recorded ops.
func (c *Context) Reset() { c.Ops = nil }

// Canvas is a ruler.Canvas with a recording context.
type Canvas struct {
	host.CanvasBase
	Ctx Context
}

// Context2D returns the recording context.
func (c *Canvas) Context2D() ruler.Context2D { return &c.Ctx }

// NewCanvas returns a new recording canvas.
func NewCanvas() *Canvas { return &Canvas{} }

package ui

import "github.com/ja-he/timeruler/internal/styling"

// CR is a constrained renderer for a TUI.
// It only allows rendering using the underlying renderer within the set
// dimension constraint.
//
// Non-conforming rendering requests are corrected to be within the bounds.
type CR struct {
	renderer Renderer

	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer returns a renderer drawing with the given renderer
// but only within the given constraint.
func NewConstrainedRenderer(
	renderer Renderer,
	constraint func() (x, y, w, h int),
) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions returns the current constraint.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws the given text, within the given dimensions, constrained by
// the set constraint, in the given style.
// Text starting left of the constraint is cut at the front.
func (r *CR) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	if cut := cx - x; cut > 0 && cy == y {
		runes := []rune(text)
		if cut >= len(runes) {
			return
		}
		text = string(runes[cut:])
	}
	r.renderer.DrawText(cx, cy, cw, ch, style, text)
}

// DrawBox draws a box of the given dimensions, constrained by the set
// constraint, in the given style.
func (r *CR) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawBox(cx, cy, cw, ch, style)
}

func (r *CR) constrain(rawX, rawY, rawW, rawH int) (x, y, w, h int) {
	xConstraint, yConstraint, wConstraint, hConstraint := r.constraint()

	x, w = constrainSpan(rawX, rawW, xConstraint, wConstraint)
	y, h = constrainSpan(rawY, rawH, yConstraint, hConstraint)
	return x, y, w, h
}

// constrainSpan clamps the span [pos, pos+length) to [min, min+maxLength).
func constrainSpan(pos, length, min, maxLength int) (int, int) {
	if pos < min {
		length -= min - pos
		pos = min
	}
	if allowed := maxLength - (pos - min); length > allowed {
		length = allowed
	}
	return pos, length
}

package ruler

// PointerEvent is the part of a pointer (mouse) event the ruler consumes.
// Coordinates are in pixels of the hosting viewport.
type PointerEvent struct {
	ClientX   int
	MovementX int
}

// Element is anything a Document can hand out for a selector.
// Only elements that are also a Canvas can be rendered into.
type Element interface{}

// Context2D is the set of 2D drawing primitives the ruler draws with.
type Context2D interface {
	BeginPath()
	MoveTo(x, y int)
	LineTo(x, y int)
	Stroke()
	ClearRect(x, y, w, h int)
	SetFont(font string)
	StrokeText(text string, x, y int)

	SetLineWidth(w int)
	SetStrokeStyle(color string)
}

// Canvas is a drawable, canvas-like surface.
//
// Left reports the rendered left offset of the surface within the viewport,
// SetLeft moves it there.
type Canvas interface {
	SetIntrinsicSize(w, h int)
	ApplyStyle(Style)
	SetLeft(px int)
	Left() int
	Context2D() Context2D
	OnPointerDown(func(PointerEvent))
}

// Document is the hosting environment of a ruler: it resolves selectors and
// delivers pointer events that are not scoped to a single element.
type Document interface {
	// Query returns the element matching the selector, or nil if none does.
	Query(selector string) Element
	// ViewportWidth returns the current width of the viewport in pixels.
	ViewportWidth() int
	OnPointerUp(func())
	OnPointerMove(func(PointerEvent))
}

// Style holds the presentation attributes applied to the surface on Init.
type Style struct {
	Position       string
	Left           int
	ZIndex         int
	ObjectFit      string
	ScrollBehavior string
	Cursor         string
	Overflow       string
}

// Target names the element a ruler renders into, either by selector or by a
// handle to the element itself.
type Target struct {
	Selector string
	Element  Element
}

// Selector returns a Target looked up by the given selector on Init.
func Selector(s string) Target { return Target{Selector: s} }

// Handle returns a Target that uses the given element directly.
func Handle(el Element) Target { return Target{Element: el} }

// IsZero reports whether no target was set at all.
func (t Target) IsZero() bool { return t.Selector == "" && t.Element == nil }

func (t Target) String() string {
	if t.Element != nil {
		return "<handle>"
	}
	return t.Selector
}

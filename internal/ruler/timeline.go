// Package ruler implements a horizontally scrubbable time ruler.
//
// A Timeline draws tick marks and time labels onto a canvas of fixed
// (virtual) width and lets the user drag that canvas left and right. When a
// drag ends close to either edge of the rendered window, the time origin of
// the window is shifted and the labels are redrawn, so the fixed-width
// canvas can represent an arbitrarily long timeline.
//
// The hosting environment (element lookup, the canvas and its 2D context,
// pointer event delivery) is abstracted by Document, Canvas and Context2D.
package ruler

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	// VirtualWidth is the intrinsic width of the canvas in pixels.
	VirtualWidth = 6000
	// ReRenderThreshold is the distance from an edge of the rendered window
	// (in pixels) at which releasing a drag shifts the window.
	ReRenderThreshold = 2000
)

// Phase is the state of the drag state machine.
type Phase int

const (
	// Idle means no drag is in progress.
	Idle Phase = iota
	// Dragging means the pointer went down on the canvas and has not been
	// released yet.
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "[unknown phase]"
}

// RenderState is the mutable state of a Timeline.
type RenderState struct {
	// Width is the virtual width of the canvas.
	Width int
	// ReRenderThreshold is the distance from an edge that triggers a window
	// shift on release.
	ReRenderThreshold int

	// ElementLeft is the left position of the canvas at drag start.
	// Only meaningful while Dragging.
	ElementLeft int
	// DiffX is the distance from the canvas' left position to the pointer at
	// drag start. Only meaningful while Dragging.
	DiffX int

	// Left is the most recently computed left position of the canvas.
	Left     int
	Dragging bool

	// TimeOrigin is the time value at pixel 0 of the rendered window.
	TimeOrigin int
	// RenderedSize is the cumulative span of all window shifts.
	RenderedSize int
	// TimelinePosition is the distance the canvas was scrubbed away from its
	// resting offset by the last move.
	TimelinePosition int
}

// Timeline is a scrubbable time ruler.
//
// All methods must be called from a single goroutine (or be serialized by the
// caller); the host's event dispatch does so.
type Timeline struct {
	config Configuration
	state  RenderState

	doc    Document
	canvas Canvas
	ctx    Context2D
}

// New constructs a Timeline for the given options, filling unset options
// with the defaults for the document's current viewport width.
//
// Nothing is drawn or subscribed to until Init is called.
func New(doc Document, opts Options) *Timeline {
	return &Timeline{
		config: Resolve(opts, Defaults(doc.ViewportWidth())),
		state: RenderState{
			Width:             VirtualWidth,
			ReRenderThreshold: ReRenderThreshold,
		},
		doc: doc,
	}
}

// Config returns the resolved configuration.
func (t *Timeline) Config() Configuration { return t.config }

// State returns a copy of the current render state.
func (t *Timeline) State() RenderState { return t.state }

// Phase returns the current phase of the drag state machine.
func (t *Timeline) Phase() Phase {
	if t.state.Dragging {
		return Dragging
	}
	return Idle
}

// TimeAt returns the time value shown at the given viewport x-coordinate,
// given the canvas' current position.
func (t *Timeline) TimeAt(clientX int) int {
	if t.canvas == nil {
		return clientX - t.config.OffsetLeft
	}
	return clientX - t.canvas.Left() + t.state.TimeOrigin
}

// Init resolves the target, prepares the canvas, draws the ruler and the
// labels for time 0 and subscribes to pointer events.
//
// It fails with ErrTargetNotFound or ErrInvalidTargetType, in which case
// nothing has been changed.
func (t *Timeline) Init() error {
	el, err := t.query(t.config.Target)
	if err != nil {
		return err
	}
	canvas, ok := el.(Canvas)
	if !ok {
		return fmt.Errorf("%w (got %T)", ErrInvalidTargetType, el)
	}

	canvas.SetIntrinsicSize(t.state.Width, t.config.CanvasHeight)
	canvas.ApplyStyle(Style{
		Position:       "absolute",
		Left:           t.config.OffsetLeft,
		ZIndex:         1000,
		ObjectFit:      "contain",
		ScrollBehavior: "smooth",
		Cursor:         "pointer",
		Overflow:       "hidden",
	})
	t.canvas = canvas
	t.ctx = canvas.Context2D()
	t.state.Left = t.config.OffsetLeft

	log.Debug().
		Str("target", t.config.Target.String()).
		Int("duration", t.config.TimelineDuration).
		Int("offset-left", t.config.OffsetLeft).
		Int("height", t.config.CanvasHeight).
		Msg("initializing ruler")

	t.DrawTicks()
	t.FillLabels(t.state.TimeOrigin)

	t.doc.OnPointerUp(t.MouseUp)
	t.doc.OnPointerMove(t.MouseMove)
	canvas.OnPointerDown(t.MouseDown)

	return nil
}

func (t *Timeline) query(target Target) (Element, error) {
	if target.Element != nil {
		return target.Element, nil
	}
	el := t.doc.Query(target.Selector)
	if el == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrTargetNotFound, target.Selector)
	}
	return el, nil
}

// MouseDown starts a drag, anchoring it at the canvas' current position.
// It does nothing before Init.
func (t *Timeline) MouseDown(e PointerEvent) {
	if t.canvas == nil {
		return
	}
	t.state.Dragging = true
	t.state.ElementLeft = t.canvas.Left()
	t.state.DiffX = e.ClientX - t.state.ElementLeft
}

// MouseMove moves the canvas along with the pointer while dragging.
//
// The resulting position is clamped to
// [OffsetLeft-Width, min(TimelineDuration, OffsetLeft)].
func (t *Timeline) MouseMove(e PointerEvent) {
	if e.MovementX == 0 || !t.state.Dragging {
		return
	}

	offsetLeft := t.config.OffsetLeft
	duration := t.config.TimelineDuration

	left := e.ClientX - t.state.DiffX
	if left < offsetLeft-t.state.Width {
		left = offsetLeft - t.state.Width
	}
	if left > duration {
		left = duration
	}
	if left > offsetLeft {
		left = offsetLeft
	}

	t.state.Left = left
	t.canvas.SetLeft(left)
	t.state.TimelinePosition = abs(left - offsetLeft)
}

// MouseUp ends a drag (if any) and shifts the rendered window if the canvas
// was scrubbed close to one of its edges.
//
// Both edges are checked independently.
func (t *Timeline) MouseUp() {
	t.state.Dragging = false

	if t.state.Width-t.state.TimelinePosition <= t.state.ReRenderThreshold {
		t.shiftWindow(t.state.ReRenderThreshold)
	}
	if t.state.TimeOrigin != 0 && t.state.TimelinePosition <= t.state.ReRenderThreshold {
		t.shiftWindow(-t.state.ReRenderThreshold)
	}
}

func (t *Timeline) shiftWindow(by int) {
	t.state.TimeOrigin += by
	t.state.RenderedSize += by
	t.FillLabels(t.state.TimeOrigin)
	t.state.Left += by
	t.canvas.SetLeft(t.state.Left)

	log.Debug().
		Int("by", by).
		Int("time-origin", t.state.TimeOrigin).
		Int("rendered-size", t.state.RenderedSize).
		Msg("shifted ruler window")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Package host provides the element registry and pointer event dispatch that
// the concrete hosting environments (terminal, raster image, recording) share.
package host

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/ruler"
)

// PointerTarget is an element that can receive scoped pointer-down events.
type PointerTarget interface {
	Contains(x int) bool
	DispatchPointerDown(ruler.PointerEvent)
}

// Document is a simple hosting document: it maps selectors to elements and
// delivers pointer events to the subscribed listeners.
//
// Dispatch is serialized, so listeners never run concurrently even if events
// are delivered from multiple goroutines. Lock and Unlock allow callers to
// take part in this serialization, e.g., for reading element state while
// rendering.
type Document struct {
	mtx sync.Mutex

	viewportWidth int
	elements      map[string]ruler.Element
	order         []string

	upListeners   []func()
	moveListeners []func(ruler.PointerEvent)
}

// NewDocument returns an empty document with a viewport of the given width (in
// pixels).
func NewDocument(viewportWidth int) *Document {
	return &Document{
		viewportWidth: viewportWidth,
		elements:      make(map[string]ruler.Element),
	}
}

// Register makes the element available under the given selector.
func (d *Document) Register(selector string, el ruler.Element) {
	if _, ok := d.elements[selector]; !ok {
		d.order = append(d.order, selector)
	}
	d.elements[selector] = el
}

// Query returns the element registered for the selector or nil.
func (d *Document) Query(selector string) ruler.Element {
	el, ok := d.elements[selector]
	if !ok {
		return nil
	}
	return el
}

// ViewportWidth returns the viewport width.
func (d *Document) ViewportWidth() int { return d.viewportWidth }

// SetViewportWidth sets the viewport width, e.g., on resize.
// Rulers constructed before are not affected.
func (d *Document) SetViewportWidth(w int) { d.viewportWidth = w }

// OnPointerUp subscribes to document-wide pointer-up events.
func (d *Document) OnPointerUp(f func()) {
	d.upListeners = append(d.upListeners, f)
}

// OnPointerMove subscribes to document-wide pointer-move events.
func (d *Document) OnPointerMove(f func(ruler.PointerEvent)) {
	d.moveListeners = append(d.moveListeners, f)
}

// DispatchPointerDown delivers a pointer-down event to the topmost registered
// element that contains the pointer position.
// Returns whether any element received the event.
func (d *Document) DispatchPointerDown(e ruler.PointerEvent) bool {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	for i := len(d.order) - 1; i >= 0; i-- {
		target, ok := d.elements[d.order[i]].(PointerTarget)
		if ok && target.Contains(e.ClientX) {
			log.Trace().Str("selector", d.order[i]).Int("x", e.ClientX).Msg("pointer down")
			target.DispatchPointerDown(e)
			return true
		}
	}
	return false
}

// DispatchPointerMove delivers a pointer-move event to all move listeners.
func (d *Document) DispatchPointerMove(e ruler.PointerEvent) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	for _, f := range d.moveListeners {
		f(e)
	}
}

// DispatchPointerUp delivers a pointer-up event to all up listeners.
func (d *Document) DispatchPointerUp() {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	for _, f := range d.upListeners {
		f()
	}
}

// Lock acquires the dispatch lock.
func (d *Document) Lock() { d.mtx.Lock() }

// Unlock releases the dispatch lock.
func (d *Document) Unlock() { d.mtx.Unlock() }

// Drag delivers a full drag gesture: pointer down at x, a single move by the
// given distance and pointer up.
// If the pointer-down hits no element, nothing else is delivered and false is
// returned.
func (d *Document) Drag(x, by int) bool {
	if !d.DispatchPointerDown(ruler.PointerEvent{ClientX: x}) {
		return false
	}
	d.DispatchPointerMove(ruler.PointerEvent{ClientX: x + by, MovementX: by})
	d.DispatchPointerUp()
	return true
}

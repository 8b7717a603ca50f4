package processors

import (
	"fmt"

	"github.com/ja-he/timeruler/internal/input"
)

// ModalInputProcessor delegates all processing to the topmost of its
// overlays or, if there are none, to its base processor.
// Implements input.ModalInputProcessor.
type ModalInputProcessor struct {
	base     input.SimpleInputProcessor
	overlays []input.SimpleInputProcessor
}

// NewModalInputProcessor returns a new ModalInputProcessor for the given base
// processor, without overlays.
func NewModalInputProcessor(base input.SimpleInputProcessor) *ModalInputProcessor {
	return &ModalInputProcessor{
		base:     base,
		overlays: make([]input.SimpleInputProcessor, 0),
	}
}

func (p *ModalInputProcessor) active() input.SimpleInputProcessor {
	if len(p.overlays) > 0 {
		return p.overlays[len(p.overlays)-1]
	}
	return p.base
}

// CapturesInput returns whether the active processor captures input.
func (p *ModalInputProcessor) CapturesInput() bool { return p.active().CapturesInput() }

// ProcessInput passes the key on to the active processor.
func (p *ModalInputProcessor) ProcessInput(key input.Key) bool {
	return p.active().ProcessInput(key)
}

// GetHelp returns the help of the active processor.
func (p *ModalInputProcessor) GetHelp() input.Help { return p.active().GetHelp() }

// ApplyModalOverlay puts the overlay on top and returns its index.
func (p *ModalInputProcessor) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	p.overlays = append(p.overlays, overlay)
	return uint(len(p.overlays) - 1)
}

// PopModalOverlay removes the topmost overlay.
func (p *ModalInputProcessor) PopModalOverlay() error {
	if len(p.overlays) == 0 {
		return fmt.Errorf("attempt to pop from empty overlay stack")
	}
	p.overlays = p.overlays[:len(p.overlays)-1]
	return nil
}

// PopModalOverlays removes all overlays down to and including the one at the
// given index.
func (p *ModalInputProcessor) PopModalOverlays(index uint) {
	if index < uint(len(p.overlays)) {
		p.overlays = p.overlays[:index]
	}
}

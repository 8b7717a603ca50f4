package panes

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/input"
	"github.com/ja-he/timeruler/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering and passing input to its
// input processor.
type RootPane struct {
	renderer ui.RenderOrchestratorControl

	dimensions func() (x, y, w, h int)

	// subpanes in draw order, i.E. later panes are drawn over earlier ones
	subpanes []ui.Pane

	// held while the subpanes draw, so that state they read is not changed
	// under them
	stateLock sync.Locker

	inputProcessor input.ModalInputProcessor

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// IsVisible always returns true, as the root pane is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw draws all visible subpanes in order, then shows the result.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	p.stateLock.Lock()
	for _, pane := range p.subpanes {
		if pane.IsVisible() {
			pane.Draw()
		}
	}
	p.stateLock.Unlock()

	p.renderer.Show()
}

// GetPositionInfo returns information on a requested position, as given by the
// topmost visible subpane containing it.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	for i := len(p.subpanes) - 1; i >= 0; i-- {
		pane := p.subpanes[i]
		if pane.IsVisible() && ui.NewRect(pane.Dimensions()).Contains(x, y) {
			return pane.GetPositionInfo(x, y)
		}
	}
	return ui.NoPanePositionInfo{}
}

// CapturesInput returns whether the input processor captures input.
func (p *RootPane) CapturesInput() bool {
	return p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (p *RootPane) ProcessInput(key input.Key) bool {
	applied := p.inputProcessor.ProcessInput(key)
	p.log.Trace().Str("key", key.ToDebugString()).Bool("applied", applied).Msg("processed input")
	return applied
}

// GetHelp returns the help for the currently active input processing.
func (p *RootPane) GetHelp() input.Help { return p.inputProcessor.GetHelp() }

// ApplyModalOverlay applies an input overlay, e.g. for a popup.
func (p *RootPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost input overlay.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// PopModalOverlays removes the input overlays down to and including the given
// index.
func (p *RootPane) PopModalOverlays(index uint) {
	p.inputProcessor.PopModalOverlays(index)
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	dimensions func() (x, y, w, h int),
	subpanes []ui.Pane,
	stateLock sync.Locker,
	inputProcessor input.ModalInputProcessor,
) *RootPane {
	return &RootPane{
		renderer:       renderer,
		dimensions:     dimensions,
		subpanes:       subpanes,
		stateLock:      stateLock,
		inputProcessor: inputProcessor,
		log:            log.With().Str("source", "root-pane").Logger(),
	}
}

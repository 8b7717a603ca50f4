package panes

import (
	"fmt"

	"github.com/ja-he/timeruler/internal/ruler"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
)

// StatusPane is a status bar that displays the ruler's render state, its
// drag phase and the time under the mouse cursor.
type StatusPane struct {
	ui.LeafPane

	state      func() ruler.RenderState
	phase      func() ruler.Phase
	cursorTime func() (t int, ok bool)
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	bgStyleEmph := bgStyle.DefaultEmphasized()

	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	state := p.state()
	stateStr := fmt.Sprintf(
		" origin %d | rendered %d | position %d ",
		state.TimeOrigin,
		state.RenderedSize,
		state.TimelinePosition,
	)
	p.Renderer.DrawText(x, y, len(stateStr), 1, bgStyleEmph, stateStr)

	if t, ok := p.cursorTime(); ok {
		cursorStr := fmt.Sprintf("t=%d", t)
		p.Renderer.DrawText(x+len(stateStr)+1, y, len(cursorStr), 1, bgStyle.LightenedFG(30), cursorStr)
	}

	phaseStr := phaseToString(p.phase())
	p.Renderer.DrawText(x+w-len(phaseStr)-2, y+h-1, len(phaseStr), 1, bgStyleEmph.DarkenedBG(10).Italicized(), phaseStr)
}

func phaseToString(phase ruler.Phase) string {
	switch phase {
	case ruler.Idle:
		return "--   IDLE   --"
	case ruler.Dragging:
		return "-- DRAGGING --"
	default:
		return "unknown"
	}
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *StatusPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.SimplePositionInfo{Type: ui.StatusPaneType}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	state func() ruler.RenderState,
	phase func() ruler.Phase,
	cursorTime func() (t int, ok bool),
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		state:      state,
		phase:      phase,
		cursorTime: cursorTime,
	}
}

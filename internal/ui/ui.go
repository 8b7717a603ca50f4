// Package ui provides the pane and renderer abstractions of the TUI.
package ui

import (
	"github.com/ja-he/timeruler/internal/styling"
)

// Pane is a UI pane.
//
// Panes are drawn in order by their parent, later panes on top of earlier
// ones. A pane that is not visible is not drawn and not considered for
// position queries.
type Pane interface {
	Draw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)
	GetPositionInfo(x, y int) PositionInfo
}

// PaneType is the type of a meaningful UI pane.
type PaneType int

const (
	_ PaneType = iota
	// NoPane describes anything that is not on a meaningful UI pane.
	NoPane
	// RulerPaneType represents the ruler.
	RulerPaneType
	// StatusPaneType represents a status pane (or status bar).
	StatusPaneType
	// LogPaneType represents a log pane.
	LogPaneType
	// HelpPaneType represents a help popup.
	HelpPaneType
)

// ToString returns the name of this pane type, primarily for debugging and
// logging purposes.
func (t PaneType) ToString() string {
	switch t {
	case NoPane:
		return "NoPane"
	case RulerPaneType:
		return "RulerPaneType"
	case StatusPaneType:
		return "StatusPaneType"
	case LogPaneType:
		return "LogPaneType"
	case HelpPaneType:
		return "HelpPaneType"
	}
	return "[UNKNOWN]"
}

// PositionInfo describes a position in the user interface.
//
// Retrievers should check the pane type first and can then type-assert for
// the pane-specific information.
type PositionInfo interface {
	PaneType() PaneType
}

// NoPanePositionInfo is the position info for positions not on any pane.
type NoPanePositionInfo struct{}

// PaneType returns NoPane.
func (NoPanePositionInfo) PaneType() PaneType { return NoPane }

// RulerPanePositionInfo provides information on a position on the ruler.
type RulerPanePositionInfo struct {
	// Time is the time value shown at the position.
	Time int
	// OnCanvas is whether the position is on the ruler's canvas (rather than on
	// the background next to it).
	OnCanvas bool
}

// PaneType returns RulerPaneType.
func (RulerPanePositionInfo) PaneType() PaneType { return RulerPaneType }

// SimplePositionInfo is the position info of panes that provide no further
// information on positions.
type SimplePositionInfo struct {
	Type PaneType
}

// PaneType returns the pane type.
func (i SimplePositionInfo) PaneType() PaneType { return i.Type }

// Renderer allows drawing boxes and text.
type Renderer interface {
	// DrawBox fills the box of the given dimensions with the style's
	// background.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// DrawText draws text within the box of the given dimensions.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// MouseCursorPos represents the position of a mouse cursor on the UI's
// x-y-plane, which has its origin 0,0 in the top left.
type MouseCursorPos struct {
	X, Y int
}

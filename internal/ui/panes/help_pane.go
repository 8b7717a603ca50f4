package panes

import (
	"sort"

	"github.com/rivo/uniseg"

	"github.com/ja-he/timeruler/internal/input"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
)

// A HelpPane is a pane that displays a help popup listing key mappings and
// their actions.
type HelpPane struct {
	ui.LeafPane

	content func() input.Help
}

// Draw draws the help popup, if visible.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	const border = 1
	const maxKeyWidth = 12
	const pad = 1
	keyOffset := x + border
	descriptionOffset := keyOffset + maxKeyWidth + pad

	for i, m := range sortedMappings(p.content()) {
		row := y + border + i
		if row >= y+h-border {
			break
		}
		keyWidth := uniseg.StringWidth(m.keys)
		p.Renderer.DrawText(keyOffset+maxKeyWidth-keyWidth, row, keyWidth, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), m.keys)
		p.Renderer.DrawText(descriptionOffset, row, w-(descriptionOffset-x)-border, 1, p.Stylesheet.Help.Italicized(), m.description)
	}
}

type mapping struct {
	keys        string
	description string
}

// sortedMappings returns the help mappings sorted by description, then keys.
func sortedMappings(help input.Help) []mapping {
	result := make([]mapping, 0, len(help))
	for keys, description := range help {
		result = append(result, mapping{keys: keys, description: description})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].description != result[j].description {
			return result[i].description < result[j].description
		}
		return result[i].keys < result[j].keys
	})
	return result
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *HelpPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.SimplePositionInfo{Type: ui.HelpPaneType}
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	content func() input.Help,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.LeafPane{
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
			Visible:    condition,
		},
		content: content,
	}
}

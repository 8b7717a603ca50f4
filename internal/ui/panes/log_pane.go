package panes

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/ja-he/timeruler/internal/potatolog"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently visible.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
	title := p.titleString()
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	titleWidth := uniseg.StringWidth(title)
	p.Renderer.DrawText(x+(w/2-titleWidth/2), y, titleWidth, 1, p.Stylesheet.LogTitleBox, title)

	const levelLen = len(" error ")
	const indent = levelLen + 1

	row := y + 2
	entries := p.logReader.Get()
	for i := len(entries) - 1; i >= 0 && row < y+h; i-- {
		entry := entries[i]

		level := potatolog.Str(entry, "level")
		p.Renderer.DrawText(x, row, levelLen, 1, p.levelStyle(level), padCenter(level, levelLen))

		col := x + indent
		for _, part := range []struct {
			key   string
			style styling.DrawStyling
		}{
			{"message", p.Stylesheet.LogDefault},
			{"caller", p.Stylesheet.LogEntryLocation},
			{"time", p.Stylesheet.LogEntryTime},
		} {
			text := potatolog.Str(entry, part.key)
			if text == "" {
				continue
			}
			p.Renderer.DrawText(col, row, w, 1, part.style, text)
			col += uniseg.StringWidth(text) + 1
		}
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			switch k {
			case "level", "message", "caller", "time":
			default:
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if row >= y+h {
				break
			}
			p.Renderer.DrawText(x+indent, row, w, 1, p.Stylesheet.LogEntryTime, k)
			p.Renderer.DrawText(x+indent+len(k)+2, row, w, 1, p.Stylesheet.LogEntryLocation, potatolog.Str(entry, k))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error", "fatal", "panic":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

// padCenter centers s in a string of the given (display) width.
func padCenter(s string, width int) string {
	pad := width - uniseg.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *LogPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.SimplePositionInfo{Type: ui.LogPaneType}
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
) *LogPane {
	return &LogPane{
		LeafPane: ui.LeafPane{
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
			Visible:    condition,
		},
		titleString: titleString,
		logReader:   logReader,
	}
}

package styling

import (
	"fmt"

	"github.com/ja-he/timeruler/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling

	RulerBackground DrawStyling
	RulerCursor     DrawStyling

	Status DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling

	Help DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, entry := range []struct {
		name string
		dst  *DrawStyling
		src  config.Styling
	}{
		{"normal", &stylesheet.Normal, c.Normal},
		{"ruler-background", &stylesheet.RulerBackground, c.RulerBackground},
		{"ruler-cursor", &stylesheet.RulerCursor, c.RulerCursor},
		{"status", &stylesheet.Status, c.Status},
		{"log-default", &stylesheet.LogDefault, c.LogDefault},
		{"log-title-box", &stylesheet.LogTitleBox, c.LogTitleBox},
		{"log-entry-type-error", &stylesheet.LogEntryTypeError, c.LogEntryTypeError},
		{"log-entry-type-warn", &stylesheet.LogEntryTypeWarn, c.LogEntryTypeWarn},
		{"log-entry-type-info", &stylesheet.LogEntryTypeInfo, c.LogEntryTypeInfo},
		{"log-entry-type-debug", &stylesheet.LogEntryTypeDebug, c.LogEntryTypeDebug},
		{"log-entry-type-trace", &stylesheet.LogEntryTypeTrace, c.LogEntryTypeTrace},
		{"log-entry-location", &stylesheet.LogEntryLocation, c.LogEntryLocation},
		{"log-entry-time", &stylesheet.LogEntryTime, c.LogEntryTime},
		{"help", &stylesheet.Help, c.Help},
	} {
		s, err := StyleFromConfig(entry.src)
		if err != nil {
			return nil, fmt.Errorf("invalid styling '%s' (%w)", entry.name, err)
		}
		*entry.dst = s
	}

	return &stylesheet, nil
}

// StyleFromConfig constructs a DrawStyling from a config styling.
func StyleFromConfig(c config.Styling) (DrawStyling, error) {
	s, err := StyleFromHex(c.Fg, c.Bg)
	if err != nil {
		return nil, err
	}
	if c.Style != nil {
		s.bold = c.Style.Bold
		s.italic = c.Style.Italic
		s.underlined = c.Style.Underlined
	}
	return s, nil
}

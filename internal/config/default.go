package config

// DefaultSelector is the selector the ruler's canvas is registered under by
// the bundled hosts.
const DefaultSelector = "#timeruler"

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	el := DefaultSelector
	return Config{
		Ruler:      Ruler{El: &el},
		Stylesheet: defaultStylesheet(colorschemeType),
		Keys: map[string]string{
			"q":       "quit",
			"?":       "toggle-help",
			"L":       "toggle-log",
			"h":       "nudge-left",
			"<left>":  "nudge-left",
			"l":       "nudge-right",
			"<right>": "nudge-right",
			"<c-b>":   "nudge-left-far",
			"<c-f>":   "nudge-right-far",
		},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			RulerBackground:   Styling{Fg: "#4a6670", Bg: "#f7f7f2", Style: &FontStyle{}},
			RulerCursor:       Styling{Fg: "#ffffff", Bg: "#cc0000", Style: &FontStyle{Bold: true}},
			Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#f0f0f0", Bg: "#ffffff", Style: &FontStyle{}},
			Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		RulerBackground:   Styling{Fg: "#a0af84", Bg: "#101418", Style: &FontStyle{}},
		RulerCursor:       Styling{Fg: "#ffffff", Bg: "#cc0000", Style: &FontStyle{Bold: true}},
		Status:            Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
		LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
		LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
		LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
		Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
	}
}

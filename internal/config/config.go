package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/timeruler/internal/ruler"
)

// Config is the configuration data as present in a config file at
// '${TIMERULER_HOME}/config.yaml'.
type Config struct {
	Ruler      Ruler             `yaml:"ruler"`
	Stylesheet Stylesheet        `yaml:"stylesheet"`
	Keys       map[string]string `yaml:"keys"`
}

// Ruler holds the ruler options as defined in a config file.
// Any option left out is filled in with the ruler's default.
type Ruler struct {
	El               *string `yaml:"el,omitempty"`
	TimelineDuration *int    `yaml:"timeline-duration,omitempty"`
	LineWidth        *int    `yaml:"line-width,omitempty"`
	ShortLineColor   *string `yaml:"short-line-color,omitempty"`
	LongLineColor    *string `yaml:"long-line-color,omitempty"`
	TextFillColor    *string `yaml:"text-fill-color,omitempty"`
	OffsetLeft       *int    `yaml:"offset-left,omitempty"`
	CanvasHeight     *int    `yaml:"canvas-height,omitempty"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	RulerBackground   Styling `yaml:"ruler-background"`
	RulerCursor       Styling `yaml:"ruler-cursor"`
	Status            Styling `yaml:"status"`
	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`
	Help              Styling `yaml:"help"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Ruler = base.Ruler.augmentWith(augment.Ruler)
	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	result.Keys = make(map[string]string, len(base.Keys)+len(augment.Keys))
	for spec, action := range base.Keys {
		result.Keys[spec] = action
	}
	for spec, action := range augment.Keys {
		if action == "" {
			delete(result.Keys, spec)
		} else {
			result.Keys[spec] = action
		}
	}

	return result
}

func (base Ruler) augmentWith(augment Ruler) Ruler {
	result := base
	overwriteIfSet(&result.El, augment.El)
	overwriteIfSet(&result.TimelineDuration, augment.TimelineDuration)
	overwriteIfSet(&result.LineWidth, augment.LineWidth)
	overwriteIfSet(&result.ShortLineColor, augment.ShortLineColor)
	overwriteIfSet(&result.LongLineColor, augment.LongLineColor)
	overwriteIfSet(&result.TextFillColor, augment.TextFillColor)
	overwriteIfSet(&result.OffsetLeft, augment.OffsetLeft)
	overwriteIfSet(&result.CanvasHeight, augment.CanvasHeight)
	return result
}

func overwriteIfSet[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// Options converts the ruler section to ruler options.
// The target is left unset unless 'el' is given.
func (r Ruler) Options() ruler.Options {
	opts := ruler.Options{
		TimelineDuration: r.TimelineDuration,
		LineWidth:        r.LineWidth,
		ShortLineColor:   r.ShortLineColor,
		LongLineColor:    r.LongLineColor,
		TextFillColor:    r.TextFillColor,
		OffsetLeft:       r.OffsetLeft,
		CanvasHeight:     r.CanvasHeight,
	}
	if r.El != nil {
		opts.Target = ruler.Selector(*r.El)
	}
	return opts
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.RulerBackground.overwriteIfDefined(augment.RulerBackground)
	result.RulerCursor.overwriteIfDefined(augment.RulerCursor)
	result.Status.overwriteIfDefined(augment.Status)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)
	result.Help.overwriteIfDefined(augment.Help)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)

package ruler

// Configuration is the fully resolved configuration of a Timeline.
// It is not changed after construction.
type Configuration struct {
	Target Target

	// TimelineDuration is the last time value that gets a label and the upper
	// bound of the drag position. Zero means unset.
	TimelineDuration int
	LineWidth        int
	ShortLineColor   string
	LongLineColor    string
	TextFillColor    string
	// OffsetLeft is the resting horizontal position of the surface.
	OffsetLeft   int
	CanvasHeight int
}

// Options is a partial Configuration.
//
// Every field that is non-nil overrides the respective default, including
// explicit zero values.
type Options struct {
	Target Target

	TimelineDuration *int
	LineWidth        *int
	ShortLineColor   *string
	LongLineColor    *string
	TextFillColor    *string
	OffsetLeft       *int
	CanvasHeight     *int
}

// Defaults returns the default configuration for a viewport of the given
// width (in pixels).
func Defaults(viewportWidth int) Configuration {
	return Configuration{
		TimelineDuration: 12000,
		LineWidth:        1,
		ShortLineColor:   "#668f80",
		LongLineColor:    "#a0af84",
		TextFillColor:    "#4a6670",
		OffsetLeft:       viewportWidth / 2,
		CanvasHeight:     100,
	}
}

// Resolve returns the defaults with every field set in opts overwritten.
// The merge is shallow and does no validation.
func Resolve(opts Options, defaults Configuration) Configuration {
	result := defaults

	if !opts.Target.IsZero() {
		result.Target = opts.Target
	}
	overwriteIfSet(&result.TimelineDuration, opts.TimelineDuration)
	overwriteIfSet(&result.LineWidth, opts.LineWidth)
	overwriteIfSet(&result.ShortLineColor, opts.ShortLineColor)
	overwriteIfSet(&result.LongLineColor, opts.LongLineColor)
	overwriteIfSet(&result.TextFillColor, opts.TextFillColor)
	overwriteIfSet(&result.OffsetLeft, opts.OffsetLeft)
	overwriteIfSet(&result.CanvasHeight, opts.CanvasHeight)

	return result
}

func overwriteIfSet[T any](dst *T, augment *T) {
	if augment != nil {
		*dst = *augment
	}
}

// Int returns a pointer to the given int, for use in Options literals.
func Int(v int) *int { return &v }

// String returns a pointer to the given string, for use in Options literals.
func String(v string) *string { return &v }

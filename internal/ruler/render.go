package ruler

import "strconv"

const labelFont = "12px Arial"

// tick heights in percent of the canvas height, measured up from the baseline
const (
	longTickPercent   = 30
	mediumTickPercent = 20
	shortTickPercent  = 10
)

// DrawTicks draws the static ruler over the full virtual width.
//
// Every 100px get a long tick (one major time unit), every remaining 50px a
// medium one and every remaining 25px a short one.
func (t *Timeline) DrawTicks() {
	ctx := t.ctx
	baseline := t.config.CanvasHeight

	ctx.SetLineWidth(t.config.LineWidth)

	for x := 0; x <= t.state.Width; x++ {
		var percent int
		var color string
		switch {
		case x%100 == 0:
			percent, color = longTickPercent, t.config.LongLineColor
		case x%50 == 0:
			percent, color = mediumTickPercent, t.config.ShortLineColor
		case x%25 == 0:
			percent, color = shortTickPercent, t.config.ShortLineColor
		default:
			continue
		}

		ctx.BeginPath()
		ctx.SetStrokeStyle(color)
		ctx.MoveTo(x, baseline)
		ctx.LineTo(x, baseline-baseline*percent/100)
		ctx.Stroke()
	}
}

// FillLabels clears the label band and draws the time labels of the window
// starting at startTime.
//
// The label at pixel x reads x+startTime. Labels past the timeline duration
// are left out; if the duration is unset only the first label is drawn.
func (t *Timeline) FillLabels(startTime int) {
	ctx := t.ctx
	duration := t.config.TimelineDuration
	if duration == 0 {
		duration = startTime + 1
	}
	labelY := t.config.CanvasHeight / 2

	ctx.ClearRect(0, 0, t.state.Width, labelY+1)
	ctx.BeginPath()
	ctx.SetFont(labelFont)
	ctx.SetStrokeStyle(t.config.TextFillColor)

	for x := 0; x <= t.state.Width && x+startTime <= duration; x += 100 {
		ctx.StrokeText(strconv.Itoa(x+startTime), x, labelY)
	}
}

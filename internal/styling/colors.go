package styling

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func colorfulColorToTcellColor(color colorful.Color) tcell.Color {
	r, g, b := color.Clamped().RGB255()
	rgb := (uint32(r) << 16) | (uint32(g) << 8) | uint32(b)
	return tcell.NewHexColor(int32(rgb))
}

func lightenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()
	scalar := float64(percentage) / 100.0
	return colorful.Hsl(hue, sat, ltn+(1.0-ltn)*scalar)
}

func darkenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()
	scalar := float64(percentage) / 100.0
	return colorful.Hsl(hue, sat, ltn-ltn*scalar)
}

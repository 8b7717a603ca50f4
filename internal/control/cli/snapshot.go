package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/host"
	"github.com/ja-he/timeruler/internal/host/raster"
	"github.com/ja-he/timeruler/internal/ruler"
)

// Flags for the `snapshot` command line command, for `go-flags` to parse
// command line args into.
type SnapshotCommand struct {
	Out   string `short:"o" long:"out" description:"the PNG file to write" value-name:"<file>" required:"true"`
	Width int    `short:"w" long:"width" description:"the width of the viewport" value-name:"<px>" default:"1200"`
	Drags []int  `short:"d" long:"drag" description:"drag the ruler by the given distance before the snapshot is taken (repeatable, replayed in order)" value-name:"<px>"`
	Theme string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme for the background"`

	Ruler RulerFlags `group:"Ruler Options"`
}

// Executes the snapshot command.
// (This gets called by `go-flags` when `snapshot` is provided on the command
// line)
func (command *SnapshotCommand) Execute(args []string) error {
	configData, err := loadConfig(themeFromFlag(command.Theme))
	if err != nil {
		return err
	}

	file, err := os.Create(command.Out)
	if err != nil {
		return fmt.Errorf("could not create output file '%s' (%w)", command.Out, err)
	}
	defer file.Close()

	state, err := snapshot(
		command.Ruler.apply(configData.Ruler.Options()),
		command.Width,
		command.Drags,
		configData.Stylesheet.RulerBackground.Bg,
		file,
	)
	if err != nil {
		return err
	}

	fmt.Printf(
		"time-origin: %d\nrendered-size: %d\ntimeline-position: %d\nleft: %d\n",
		state.TimeOrigin,
		state.RenderedSize,
		state.TimelinePosition,
		state.Left,
	)
	return nil
}

// snapshot sets up a ruler on an image canvas in a viewport of the given width
// (in px), replays the given drags on it and writes the viewport as a PNG.
// Returns the ruler's final state.
func snapshot(
	opts ruler.Options,
	viewportWidth int,
	drags []int,
	backgroundHex string,
	out io.Writer,
) (ruler.RenderState, error) {
	bg, err := raster.ParseColor(backgroundHex)
	if err != nil {
		return ruler.RenderState{}, err
	}

	doc := host.NewDocument(viewportWidth)
	canvas := raster.NewCanvas()
	selector := opts.Target.Selector
	if selector == "" {
		selector = config.DefaultSelector
	}
	doc.Register(selector, canvas)
	opts.Target = ruler.Selector(selector)

	timeline := ruler.New(doc, opts)
	if err := timeline.Init(); err != nil {
		return ruler.RenderState{}, fmt.Errorf("could not initialize ruler (%w)", err)
	}

	for i, by := range drags {
		if !doc.Drag(canvas.Left(), by) {
			return ruler.RenderState{}, fmt.Errorf("drag #%d (by %d) did not hit the ruler", i, by)
		}
		log.Debug().Int("by", by).Int("left", canvas.Left()).Msg("replayed drag")
	}

	if err := raster.WritePNG(out, canvas.Viewport(viewportWidth, bg)); err != nil {
		return ruler.RenderState{}, err
	}
	return timeline.State(), nil
}

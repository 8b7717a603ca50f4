package control

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/potatolog"
	"github.com/ja-he/timeruler/internal/ruler"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/tui"
)

func newTestController(t *testing.T) (*Controller, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	screenHandler, err := tui.NewScreenHandler(sim)
	require.NoError(t, err)
	sim.SetSize(80, 24)
	t.Cleanup(screenHandler.Fini)

	cfg := config.Default(config.Dark)
	stylesheet, err := styling.NewStylesheetFromConfig(cfg.Stylesheet)
	require.NoError(t, err)

	opts := cfg.Ruler.Options()
	opts.OffsetLeft = ruler.Int(100)

	c, err := NewController(screenHandler, opts, cfg.Keys, *stylesheet, potatolog.NewMemoryLogReaderWriter(8))
	require.NoError(t, err)
	return c, sim
}

func key(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func TestNewController(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		sim := tcell.NewSimulationScreen("UTF-8")
		screenHandler, err := tui.NewScreenHandler(sim)
		require.NoError(t, err)
		defer screenHandler.Fini()

		_, err = NewController(screenHandler, ruler.Options{}, map[string]string{"x": "explode"}, styling.Stylesheet{}, potatolog.NewMemoryLogReaderWriter(8))
		assert.Error(t, err)
	})

	t.Run("registers canvas under default selector", func(t *testing.T) {
		c, _ := newTestController(t)
		assert.Same(t, c.canvas, c.doc.Query(config.DefaultSelector))
		assert.Equal(t, 100, c.canvas.Left())
	})
}

func TestMouseDrag(t *testing.T) {
	c, _ := newTestController(t)

	// press on the ruler (row 1 and below), at column 15, i.e. 150px
	c.handleEvent(tcell.NewEventMouse(15, 3, tcell.Button1, tcell.ModNone))
	assert.Equal(t, ruler.Dragging, c.timeline.Phase())

	c.handleEvent(tcell.NewEventMouse(10, 3, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 50, c.canvas.Left())

	c.handleEvent(tcell.NewEventMouse(10, 3, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, ruler.Idle, c.timeline.Phase())
	assert.Equal(t, 50, c.timeline.State().TimelinePosition)

	t.Run("press outside of ruler is ignored", func(t *testing.T) {
		c.handleEvent(tcell.NewEventMouse(15, 0, tcell.Button1, tcell.ModNone))
		assert.Equal(t, ruler.Idle, c.timeline.Phase())
		c.handleEvent(tcell.NewEventMouse(5, 0, tcell.Button1, tcell.ModNone))
		assert.Equal(t, 50, c.canvas.Left())
		c.handleEvent(tcell.NewEventMouse(5, 0, tcell.ButtonNone, tcell.ModNone))
	})

	t.Run("cursor tracking", func(t *testing.T) {
		c.handleEvent(tcell.NewEventMouse(7, 4, tcell.ButtonNone, tcell.ModNone))
		assert.True(t, c.mouseMode)
		assert.Equal(t, 7, c.cursor.X)
		c.handleEvent(key('L'))
		assert.False(t, c.mouseMode)
	})
}

func TestKeyActions(t *testing.T) {
	c, _ := newTestController(t)

	t.Run("nudges", func(t *testing.T) {
		c.handleEvent(key('h'))
		assert.Equal(t, 90, c.canvas.Left())
		c.handleEvent(tcell.NewEventKey(tcell.KeyCtrlB, 0, tcell.ModCtrl))
		assert.Equal(t, -10, c.canvas.Left())
		c.handleEvent(tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl))
		assert.Equal(t, 90, c.canvas.Left())
		c.handleEvent(key('l'))
		assert.Equal(t, 100, c.canvas.Left())
		assert.Equal(t, ruler.Idle, c.timeline.Phase())

		// resting position is the rightmost one
		c.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
		assert.Equal(t, 100, c.canvas.Left())

		// backspace is sent as ^H by some terminals and must not nudge
		c.handleEvent(key('h'))
		c.handleEvent(tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone))
		assert.Equal(t, 90, c.canvas.Left())
		c.handleEvent(key('l'))
	})

	t.Run("log", func(t *testing.T) {
		c.handleEvent(key('L'))
		assert.True(t, c.showLog)
		c.handleEvent(key('L'))
		assert.False(t, c.showLog)
	})

	t.Run("help captures input until closed", func(t *testing.T) {
		c.handleEvent(key('?'))
		assert.True(t, c.showHelp)

		c.handleEvent(key('h'))
		assert.Equal(t, 100, c.canvas.Left())

		c.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
		assert.False(t, c.showHelp)

		c.handleEvent(key('h'))
		assert.Equal(t, 90, c.canvas.Left())
	})

	t.Run("quit", func(t *testing.T) {
		c.handleEvent(key('q'))
		select {
		case e := <-c.controllerEvents:
			assert.Equal(t, controllerEventExit, e)
		default:
			t.Error("expected exit event")
		}
	})
}

func TestResize(t *testing.T) {
	c, _ := newTestController(t)
	c.handleEvent(tcell.NewEventResize(100, 30))
	assert.Equal(t, 1000, c.doc.ViewportWidth())
}

func TestDraw(t *testing.T) {
	c, sim := newTestController(t)
	c.draw()

	row := func(y int) string {
		w, _ := sim.Size()
		var sb strings.Builder
		for x := 0; x < w; x++ {
			ch, _, _, _ := sim.GetContent(x, y)
			sb.WriteRune(ch)
		}
		return sb.String()
	}

	assert.Contains(t, row(0), "origin 0 | rendered 0 | position 0")
	assert.Contains(t, row(0), "IDLE")

	// the canvas rests at column 10, its bottom row is the ruler pane's last
	ch, _, _, _ := sim.GetContent(10, 10)
	assert.Equal(t, '│', ch)
	ch, _, _, _ = sim.GetContent(10, 5)
	assert.Equal(t, '0', ch)
}

func TestEmptyRenderEvents(t *testing.T) {
	events := make(chan controllerEvent, 4)
	events <- controllerEventRender
	events <- controllerEventRender
	assert.False(t, emptyRenderEvents(events))
	assert.Empty(t, events)

	events <- controllerEventRender
	events <- controllerEventExit
	assert.True(t, emptyRenderEvents(events))
}

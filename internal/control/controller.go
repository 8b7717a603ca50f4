// Package control wires the ruler, its terminal host and the TUI panes
// together and runs the interactive event loop.
package control

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/control/action"
	"github.com/ja-he/timeruler/internal/host"
	"github.com/ja-he/timeruler/internal/host/term"
	"github.com/ja-he/timeruler/internal/input"
	"github.com/ja-he/timeruler/internal/input/processors"
	"github.com/ja-he/timeruler/internal/potatolog"
	"github.com/ja-he/timeruler/internal/ruler"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/tui"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/ui/panes"
)

const (
	// nudgeColumns is the distance of a regular nudge, in columns.
	nudgeColumns = 1
	// farNudgeColumns is the distance of a far nudge, in columns.
	farNudgeColumns = 10
)

// Controller is the struct for the TUI controller.
type Controller struct {
	// guards all UI state below as well as the panes' reads of it
	mtx sync.Mutex

	doc      *host.Document
	canvas   *term.Canvas
	timeline *ruler.Timeline

	rootPane        *panes.RootPane
	rulerDimensions func() (x, y, w, h int)

	cursor    ui.MouseCursorPos
	mouseMode bool
	pointer   pointerState

	showHelp bool
	showLog  bool

	controllerEvents chan controllerEvent

	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer
	screenEvents      tui.EventPollable
}

// pointerState tracks the primary mouse button, so that terminal mouse events
// (which carry absolute positions only) can be turned into pointer events.
type pointerState struct {
	down  bool
	lastX int
}

// NewController sets up the ruler on a cell canvas for the given screen, and
// the panes and key bindings around it.
//
// The ruler options' target selector (or config.DefaultSelector, if unset)
// is what the canvas is registered under.
func NewController(
	screenHandler *tui.ScreenHandler,
	rulerOptions ruler.Options,
	keys map[string]string,
	stylesheet styling.Stylesheet,
	logReader potatolog.LogReader,
) (*Controller, error) {
	c := &Controller{
		controllerEvents:  make(chan controllerEvent, 32),
		initializedScreen: screenHandler,
		syncer:            screenHandler,
		screenEvents:      screenHandler.GetEventPollable(),
	}

	screenDimensions := screenHandler.Dimensions
	_, _, w, _ := screenDimensions()

	c.doc = host.NewDocument(term.PixelOfColumn(w))
	c.canvas = term.NewCanvas()
	selector := rulerOptions.Target.Selector
	if selector == "" {
		selector = config.DefaultSelector
	}
	c.doc.Register(selector, c.canvas)
	rulerOptions.Target = ruler.Selector(selector)

	c.timeline = ruler.New(c.doc, rulerOptions)
	if err := c.timeline.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize ruler (%w)", err)
	}

	actions := map[string]action.Action{
		"quit": action.NewSimple(action.Describe("quit"), func() {
			c.controllerEvents <- controllerEventExit
		}),
		"toggle-help": action.NewSimple(action.Describe("toggle help"), c.toggleHelp),
		"toggle-log":  action.NewSimple(action.Describe("toggle log"), func() { c.showLog = !c.showLog }),
		"nudge-left": action.NewSimple(action.Describe("nudge ruler left"), func() {
			nudge(c.doc, c.canvas, -term.PixelOfColumn(nudgeColumns))
		}),
		"nudge-right": action.NewSimple(action.Describe("nudge ruler right"), func() {
			nudge(c.doc, c.canvas, term.PixelOfColumn(nudgeColumns))
		}),
		"nudge-left-far": action.NewSimple(action.Describe("nudge ruler left (far)"), func() {
			nudge(c.doc, c.canvas, -term.PixelOfColumn(farNudgeColumns))
		}),
		"nudge-right-far": action.NewSimple(action.Describe("nudge ruler right (far)"), func() {
			nudge(c.doc, c.canvas, term.PixelOfColumn(farNudgeColumns))
		}),
	}
	tree, err := input.ConstructInputTreeFromConfig(keys, actions)
	if err != nil {
		return nil, fmt.Errorf("could not construct key bindings (%w)", err)
	}

	_, rulerRows := c.canvas.Dimensions()
	statusDimensions := func() (x, y, w, h int) {
		_, _, screenWidth, _ := screenDimensions()
		return 0, 0, screenWidth, 1
	}
	rulerDimensions := func() (x, y, w, h int) {
		_, _, screenWidth, _ := screenDimensions()
		return 0, 1, screenWidth, rulerRows
	}
	c.rulerDimensions = rulerDimensions
	logDimensions := func() (x, y, w, h int) {
		_, _, screenWidth, screenHeight := screenDimensions()
		return 0, 1 + rulerRows, screenWidth, screenHeight - 1 - rulerRows
	}
	helpDimensions := func() (x, y, w, h int) {
		_, _, screenWidth, screenHeight := screenDimensions()
		w = min(screenWidth-4, 50)
		h = min(screenHeight-2, len(tree.GetHelp())+2)
		return (screenWidth - w) / 2, (screenHeight - h) / 2, w, h
	}

	rulerPane := panes.NewRulerPane(
		ui.NewConstrainedRenderer(screenHandler, rulerDimensions),
		rulerDimensions,
		stylesheet,
		c.canvas,
		c.timeline.TimeAt,
		func() (int, bool) {
			_, y, _, h := rulerDimensions()
			return c.cursor.X, c.mouseMode && c.cursor.Y >= y && c.cursor.Y < y+h
		},
	)
	statusPane := panes.NewStatusPane(
		ui.NewConstrainedRenderer(screenHandler, statusDimensions),
		statusDimensions,
		stylesheet,
		c.timeline.State,
		c.timeline.Phase,
		func() (int, bool) {
			if !c.mouseMode {
				return 0, false
			}
			info, ok := c.rootPane.GetPositionInfo(c.cursor.X, c.cursor.Y).(ui.RulerPanePositionInfo)
			return info.Time, ok
		},
	)
	logPane := panes.NewLogPane(
		ui.NewConstrainedRenderer(screenHandler, logDimensions),
		logDimensions,
		stylesheet,
		func() bool { return c.showLog },
		func() string { return "LOG" },
		logReader,
	)
	helpPane := panes.NewHelpPane(
		ui.NewConstrainedRenderer(screenHandler, helpDimensions),
		helpDimensions,
		stylesheet,
		func() bool { return c.showHelp },
		tree.GetHelp,
	)

	c.rootPane = panes.NewRootPane(
		screenHandler,
		screenDimensions,
		[]ui.Pane{statusPane, rulerPane, logPane, helpPane},
		c.doc,
		processors.NewModalInputProcessor(tree),
	)

	return c, nil
}

// toggleHelp shows the help popup, which captures all input until it is
// closed again.
func (c *Controller) toggleHelp() {
	if c.showHelp {
		return
	}
	c.showHelp = true

	var overlayIndex uint
	closeHelp := action.NewSimple(action.Describe("close help"), func() {
		c.showHelp = false
		c.rootPane.PopModalOverlays(overlayIndex)
	})
	overlay, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"?":     closeHelp,
		"q":     closeHelp,
		"<esc>": closeHelp,
	})
	if err != nil {
		log.Error().Err(err).Msg("could not construct help overlay, likely logic error")
		c.showHelp = false
		return
	}
	overlayIndex = c.rootPane.ApplyModalOverlay(overlay)
}

// nudge moves the canvas by the given distance (in px) as a synthetic drag.
func nudge(doc *host.Document, canvas ruler.Canvas, by int) {
	if !doc.Drag(canvas.Left(), by) {
		log.Warn().Int("x", canvas.Left()).Msg("nudge did not hit the ruler")
	}
}

// handleEvent processes a single screen event.
func (c *Controller) handleEvent(ev tcell.Event) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	switch e := ev.(type) {
	case *tcell.EventKey:
		c.mouseMode = false

		key := input.KeyFromTcellEvent(e)
		inputApplied := c.rootPane.ProcessInput(key)
		if !inputApplied {
			log.Warn().Str("key", key.ToDebugString()).Msg("could not apply key input")
		}

	case *tcell.EventMouse:
		c.mouseMode = true

		x, y := e.Position()
		c.cursor = ui.MouseCursorPos{X: x, Y: y}
		c.handleMouse(x, y, e.Buttons()&tcell.Button1 != 0)

	case *tcell.EventResize:
		c.syncer.NeedsSync()
		w, h := e.Size()
		c.doc.SetViewportWidth(term.PixelOfColumn(w))
		log.Debug().Int("width", w).Int("height", h).Msg("screen resized")
	}
}

// handleMouse turns a mouse event at the given cell into pointer events:
// a press on the ruler starts a drag, motion while pressed moves, and a
// release ends it.
func (c *Controller) handleMouse(x, y int, pressed bool) {
	rulerX, _, _, _ := c.rulerDimensions()
	clientX := term.PixelOfColumn(x - rulerX)

	switch {
	case pressed && !c.pointer.down:
		if c.rootPane.GetPositionInfo(x, y).PaneType() != ui.RulerPaneType {
			return
		}
		c.pointer = pointerState{down: true, lastX: clientX}
		c.doc.DispatchPointerDown(ruler.PointerEvent{ClientX: clientX})

	case pressed && clientX != c.pointer.lastX:
		movement := clientX - c.pointer.lastX
		c.pointer.lastX = clientX
		c.doc.DispatchPointerMove(ruler.PointerEvent{ClientX: clientX, MovementX: movement})

	case !pressed && c.pointer.down:
		c.pointer.down = false
		c.doc.DispatchPointerUp()
	}
}

// draw renders the UI.
func (c *Controller) draw() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.rootPane.Draw()
}

type controllerEvent int

const (
	controllerEventExit controllerEvent = iota
	controllerEventRender
)

// Empties all render events from the channel.
// Returns true, if an exit event was encountered so the caller
// knows to exit.
func emptyRenderEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent {
			case controllerEventRender:
				{
					// dump extra render events
				}
			case controllerEventExit:
				return true
			}
		default:
			return false
		}
	}
}

// Run runs the TUI until the quit action is triggered.
func (c *Controller) Run() {
	log.Info().Msg("timeruler TUI started")

	var wg sync.WaitGroup

	// Run the main render loop, that renders or exits when prompted accordingly
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer c.initializedScreen.Fini()
		for controllerEvent := range c.controllerEvents {
			switch controllerEvent {
			case controllerEventRender:
				start := time.Now()

				// empty all further render events before rendering
				exitEventEncounteredOnEmpty := emptyRenderEvents(c.controllerEvents)
				// exit if an exit event was coming up
				if exitEventEncounteredOnEmpty {
					return
				}
				c.draw()

				log.Trace().Dur("duration", time.Since(start)).Msg("rendered")

			case controllerEventExit:
				return

			default:
				log.Error().Interface("event", controllerEvent).Msgf("unhandled controller event")
			}
		}
	}()

	// Run the event tracking loop, that waits for and processes events and pings
	// for a redraw (or program exit) after each event.
	go func() {
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				return
			}
			c.handleEvent(ev)
			c.controllerEvents <- controllerEventRender
		}
	}()

	c.controllerEvents <- controllerEventRender
	wg.Wait()
	log.Info().Msg("timeruler TUI exited")
}

package ruler_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/timeruler/internal/host"
	"github.com/ja-he/timeruler/internal/host/record"
	"github.com/ja-he/timeruler/internal/ruler"
)

func setup(t *testing.T, opts ruler.Options) (*ruler.Timeline, *record.Canvas, *host.Document) {
	t.Helper()
	doc := host.NewDocument(1000)
	canvas := record.NewCanvas()
	doc.Register("#ruler", canvas)
	if opts.Target.IsZero() {
		opts.Target = ruler.Selector("#ruler")
	}
	tl := ruler.New(doc, opts)
	require.NoError(t, tl.Init())
	canvas.Ctx.Reset()
	return tl, canvas, doc
}

// drag performs a full down-move-up gesture by dx pixels, starting at the
// canvas' current left position.
func drag(tl *ruler.Timeline, canvas *record.Canvas, dx int) {
	start := canvas.Left()
	tl.MouseDown(ruler.PointerEvent{ClientX: start})
	tl.MouseMove(ruler.PointerEvent{ClientX: start + dx, MovementX: dx})
	tl.MouseUp()
}

func TestInit(t *testing.T) {

	t.Run("target not found", func(t *testing.T) {
		doc := host.NewDocument(1000)
		tl := ruler.New(doc, ruler.Options{Target: ruler.Selector("#nope")})
		err := tl.Init()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ruler.ErrTargetNotFound))
		assert.Contains(t, err.Error(), "#nope")
	})

	t.Run("invalid target type", func(t *testing.T) {
		doc := host.NewDocument(1000)
		doc.Register("#label", &host.Text{Content: "hello"})
		tl := ruler.New(doc, ruler.Options{Target: ruler.Selector("#label")})
		err := tl.Init()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ruler.ErrInvalidTargetType))
	})

	t.Run("invalid handle type", func(t *testing.T) {
		doc := host.NewDocument(1000)
		tl := ruler.New(doc, ruler.Options{Target: ruler.Handle(&host.Text{})})
		assert.ErrorIs(t, tl.Init(), ruler.ErrInvalidTargetType)
	})

	t.Run("failed init changes nothing", func(t *testing.T) {
		doc := host.NewDocument(1000)
		doc.Register("#label", &host.Text{})
		tl := ruler.New(doc, ruler.Options{Target: ruler.Selector("#label")})
		require.Error(t, tl.Init())
		assert.False(t, doc.DispatchPointerDown(ruler.PointerEvent{ClientX: 500}))
		doc.DispatchPointerUp()
		assert.Equal(t, 0, tl.State().TimeOrigin)
	})

	t.Run("handle", func(t *testing.T) {
		doc := host.NewDocument(1000)
		canvas := record.NewCanvas()
		tl := ruler.New(doc, ruler.Options{Target: ruler.Handle(canvas)})
		require.NoError(t, tl.Init())
		w, h := canvas.IntrinsicSize()
		assert.Equal(t, ruler.VirtualWidth, w)
		assert.Equal(t, 100, h)
	})

	t.Run("surface setup", func(t *testing.T) {
		doc := host.NewDocument(1000)
		canvas := record.NewCanvas()
		doc.Register("#ruler", canvas)
		tl := ruler.New(doc, ruler.Options{Target: ruler.Selector("#ruler"), CanvasHeight: ruler.Int(80)})
		require.NoError(t, tl.Init())

		w, h := canvas.IntrinsicSize()
		assert.Equal(t, 6000, w)
		assert.Equal(t, 80, h)
		assert.Equal(t, ruler.Style{
			Position:       "absolute",
			Left:           500,
			ZIndex:         1000,
			ObjectFit:      "contain",
			ScrollBehavior: "smooth",
			Cursor:         "pointer",
			Overflow:       "hidden",
		}, canvas.Style())
		assert.Equal(t, ruler.Idle, tl.Phase())
	})

	t.Run("initial render", func(t *testing.T) {
		doc := host.NewDocument(1000)
		canvas := record.NewCanvas()
		tl := ruler.New(doc, ruler.Options{Target: ruler.Handle(canvas), TimelineDuration: ruler.Int(10000)})
		require.NoError(t, tl.Init())

		texts := canvas.Ctx.Filter(record.OpStrokeText)
		require.NotEmpty(t, texts)
		assert.Equal(t, "0", texts[0].Text)
		// ticks are drawn before labels
		firstText := -1
		lastStroke := -1
		for i, op := range canvas.Ctx.Ops {
			if op.Kind == record.OpStrokeText && firstText < 0 {
				firstText = i
			}
			if op.Kind == record.OpStroke {
				lastStroke = i
			}
		}
		assert.Less(t, lastStroke, firstText)
	})

	t.Run("subscribes to pointer events", func(t *testing.T) {
		tl, canvas, doc := setup(t, ruler.Options{OffsetLeft: ruler.Int(300), TimelineDuration: ruler.Int(10000)})

		require.True(t, doc.DispatchPointerDown(ruler.PointerEvent{ClientX: 300}))
		assert.Equal(t, ruler.Dragging, tl.Phase())
		doc.DispatchPointerMove(ruler.PointerEvent{ClientX: 100, MovementX: -200})
		assert.Equal(t, 100, canvas.Left())
		doc.DispatchPointerUp()
		assert.Equal(t, ruler.Idle, tl.Phase())
	})
}

func TestMouseMove(t *testing.T) {

	t.Run("scenario: unclamped move", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300), TimelineDuration: ruler.Int(10000)})

		tl.MouseDown(ruler.PointerEvent{ClientX: 300})
		assert.Equal(t, 300, tl.State().ElementLeft)
		assert.Equal(t, 0, tl.State().DiffX)

		tl.MouseMove(ruler.PointerEvent{ClientX: 100, MovementX: -200})
		assert.Equal(t, 100, tl.State().Left)
		assert.Equal(t, 100, canvas.Left())
		assert.Equal(t, 200, tl.State().TimelinePosition)
	})

	t.Run("ignored without movement", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		tl.MouseDown(ruler.PointerEvent{ClientX: 300})
		tl.MouseMove(ruler.PointerEvent{ClientX: 100, MovementX: 0})
		assert.Equal(t, 300, canvas.Left())
		assert.Equal(t, 0, tl.State().TimelinePosition)
	})

	t.Run("ignored when not dragging", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		tl.MouseMove(ruler.PointerEvent{ClientX: 100, MovementX: -200})
		assert.Equal(t, 300, canvas.Left())
		assert.Equal(t, 0, tl.State().TimelinePosition)
	})

	t.Run("anchor offset", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		tl.MouseDown(ruler.PointerEvent{ClientX: 450})
		assert.Equal(t, 150, tl.State().DiffX)
		tl.MouseMove(ruler.PointerEvent{ClientX: 350, MovementX: -100})
		assert.Equal(t, 200, canvas.Left())
	})

	t.Run("clamped to resting offset", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		tl.MouseDown(ruler.PointerEvent{ClientX: 300})
		tl.MouseMove(ruler.PointerEvent{ClientX: 900, MovementX: 600})
		assert.Equal(t, 300, canvas.Left())
		assert.Equal(t, 0, tl.State().TimelinePosition)
	})

	t.Run("clamped to width", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		tl.MouseDown(ruler.PointerEvent{ClientX: 300})
		tl.MouseMove(ruler.PointerEvent{ClientX: -9000, MovementX: -9300})
		assert.Equal(t, 300-6000, canvas.Left())
		assert.Equal(t, 6000, tl.State().TimelinePosition)
	})

	t.Run("clamped to duration", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300), TimelineDuration: ruler.Int(150)})
		tl.MouseDown(ruler.PointerEvent{ClientX: 300})
		tl.MouseMove(ruler.PointerEvent{ClientX: 250, MovementX: -50})
		assert.Equal(t, 150, canvas.Left())
		assert.Equal(t, 150, tl.State().TimelinePosition)
	})

	t.Run("bounds hold for any sequence", func(t *testing.T) {
		for _, offset := range []int{0, 300, 5000} {
			for _, duration := range []int{0, 100, 10000} {
				tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(offset), TimelineDuration: ruler.Int(duration)})
				upper := offset
				if duration < upper {
					upper = duration
				}
				lower := offset - ruler.VirtualWidth

				tl.MouseDown(ruler.PointerEvent{ClientX: canvas.Left()})
				x := canvas.Left()
				for _, dx := range []int{-7000, 300, 12000, -150, -2500, 9999, -20000, 1} {
					x += dx
					tl.MouseMove(ruler.PointerEvent{ClientX: x, MovementX: dx})
					left := tl.State().Left
					if lower <= upper {
						assert.GreaterOrEqual(t, left, lower)
						assert.LessOrEqual(t, left, upper)
					}
					expectedPos := left - offset
					if expectedPos < 0 {
						expectedPos = -expectedPos
					}
					assert.Equal(t, expectedPos, tl.State().TimelinePosition)
				}
				tl.MouseUp()
			}
		}
	})
}

func TestMouseUp(t *testing.T) {

	t.Run("idle release is harmless", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		tl.MouseUp()
		tl.MouseUp()
		assert.Equal(t, 0, tl.State().TimeOrigin)
		assert.Equal(t, 0, tl.State().RenderedSize)
		assert.Equal(t, 300, canvas.Left())
		assert.Empty(t, canvas.Ctx.Ops)
		assert.Equal(t, ruler.Idle, tl.Phase())
	})

	t.Run("no shift away from edges", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		drag(tl, canvas, -3000)
		assert.Equal(t, 0, tl.State().TimeOrigin)
		assert.Equal(t, 300-3000, canvas.Left())
		assert.Empty(t, canvas.Ctx.Filter(record.OpStrokeText))
	})

	t.Run("scenario: shift forward near right edge", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300), TimelineDuration: ruler.Int(10000)})

		tl.MouseDown(ruler.PointerEvent{ClientX: 300})
		tl.MouseMove(ruler.PointerEvent{ClientX: -4200, MovementX: -4500})
		require.Equal(t, 4500, tl.State().TimelinePosition)
		require.Equal(t, -4200, canvas.Left())

		tl.MouseUp()
		s := tl.State()
		assert.Equal(t, 2000, s.TimeOrigin)
		assert.Equal(t, 2000, s.RenderedSize)
		assert.Equal(t, -2200, s.Left)
		assert.Equal(t, -2200, canvas.Left())
		assert.False(t, s.Dragging)

		texts := canvas.Ctx.Filter(record.OpStrokeText)
		require.NotEmpty(t, texts)
		assert.Equal(t, "2000", texts[0].Text)
		assert.Equal(t, 0, texts[0].X)
		// the window ends at the virtual width, not at the timeline duration
		assert.Equal(t, "8000", texts[len(texts)-1].Text)
		assert.Equal(t, 6000, texts[len(texts)-1].X)
	})

	t.Run("shift keeps time under pointer", func(t *testing.T) {
		tl, _, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		tl.MouseDown(ruler.PointerEvent{ClientX: 300})
		tl.MouseMove(ruler.PointerEvent{ClientX: -4200, MovementX: -4500})
		before := tl.TimeAt(500)
		tl.MouseUp()
		assert.Equal(t, before, tl.TimeAt(500))
	})

	t.Run("shift backward near left edge", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		drag(tl, canvas, -4500)
		require.Equal(t, 2000, tl.State().TimeOrigin)

		tl.MouseDown(ruler.PointerEvent{ClientX: canvas.Left()})
		tl.MouseMove(ruler.PointerEvent{ClientX: 200, MovementX: 200 - canvas.Left()})
		require.Equal(t, 100, tl.State().TimelinePosition)
		tl.MouseUp()

		assert.Equal(t, 0, tl.State().TimeOrigin)
		assert.Equal(t, 0, tl.State().RenderedSize)
		assert.Equal(t, 200-2000, canvas.Left())
	})

	t.Run("no backward shift at origin zero", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		drag(tl, canvas, -100)
		assert.Equal(t, 0, tl.State().TimeOrigin)
		assert.Equal(t, 200, canvas.Left())
	})

	t.Run("round trip", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		drag(tl, canvas, -4500)
		require.Equal(t, 2000, tl.State().TimeOrigin)
		drag(tl, canvas, 4500)
		assert.Equal(t, 0, tl.State().TimeOrigin)
		assert.Equal(t, 0, tl.State().RenderedSize)
	})

	t.Run("repeated release acts on shifted state", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		tl.MouseDown(ruler.PointerEvent{ClientX: 300})
		tl.MouseMove(ruler.PointerEvent{ClientX: -4200, MovementX: -4500})

		tl.MouseUp()
		first := tl.State()
		tl.MouseUp()
		second := tl.State()

		// the scrub distance is not recomputed on release, so the same edge
		// check fires again, once
		assert.Equal(t, first.TimelinePosition, second.TimelinePosition)
		assert.Equal(t, first.TimeOrigin+2000, second.TimeOrigin)
		assert.Equal(t, first.RenderedSize+2000, second.RenderedSize)
		assert.Equal(t, first.Left+2000, second.Left)
		assert.Equal(t, second.Left, canvas.Left())
	})

	t.Run("rendered size follows origin", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		for _, dx := range []int{-4500, -5000, 3000, -5800, 6000, -100} {
			before := tl.State()
			drag(tl, canvas, dx)
			after := tl.State()
			assert.Equal(t, after.TimeOrigin-before.TimeOrigin, after.RenderedSize-before.RenderedSize)
			assert.Equal(t, after.TimeOrigin, after.RenderedSize)
			assert.Zero(t, after.TimeOrigin%ruler.ReRenderThreshold)
		}
	})

	t.Run("origin unchanged during drag", func(t *testing.T) {
		tl, canvas, _ := setup(t, ruler.Options{OffsetLeft: ruler.Int(300)})
		tl.MouseDown(ruler.PointerEvent{ClientX: 300})
		x := 300
		for i := 0; i < 10; i++ {
			x -= 600
			tl.MouseMove(ruler.PointerEvent{ClientX: x, MovementX: -600})
			assert.Equal(t, 0, tl.State().TimeOrigin)
		}
		assert.Empty(t, canvas.Ctx.Ops)
	})
}

func TestPhase(t *testing.T) {
	assert.Equal(t, "idle", ruler.Idle.String())
	assert.Equal(t, "dragging", ruler.Dragging.String())
	assert.Equal(t, "[unknown phase]", ruler.Phase(42).String())
}

package raster_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/timeruler/internal/host"
	"github.com/ja-he/timeruler/internal/host/raster"
	"github.com/ja-he/timeruler/internal/ruler"
)

func TestParseColor(t *testing.T) {
	c, err := raster.ParseColor("#a0af84")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xa0, G: 0xaf, B: 0x84, A: 0xff}, c)

	_, err = raster.ParseColor("green-ish")
	assert.Error(t, err)
}

func TestRulerOnImage(t *testing.T) {
	doc := host.NewDocument(800)
	canvas := raster.NewCanvas()
	doc.Register("#ruler", canvas)

	tl := ruler.New(doc, ruler.Options{Target: ruler.Selector("#ruler")})
	require.NoError(t, tl.Init())

	long, _ := raster.ParseColor("#a0af84")
	short, _ := raster.ParseColor("#668f80")
	img := canvas.Image()

	assert.Equal(t, 6001, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	assert.Equal(t, long, img.RGBAAt(100, 75), "long tick reaches up to 70")
	assert.Equal(t, long, img.RGBAAt(100, 70))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(100, 65), "long tick ends at 70")
	assert.Equal(t, short, img.RGBAAt(50, 85), "medium tick")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(50, 75), "medium tick ends at 80")
	assert.Equal(t, short, img.RGBAAt(25, 95), "short tick")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(30, 95), "between ticks")

	// some label pixels are drawn right above the label baseline
	labelPixels := 0
	for y := 40; y < 51; y++ {
		for x := 0; x < 10; x++ {
			if img.RGBAAt(x, y).A != 0 {
				labelPixels++
			}
		}
	}
	assert.NotZero(t, labelPixels, "no label drawn")

	t.Run("viewport at offset", func(t *testing.T) {
		bg := color.RGBA{R: 1, G: 2, B: 3, A: 0xff}
		vp := canvas.Viewport(800, bg)
		assert.Equal(t, 800, vp.Bounds().Dx())
		assert.Equal(t, bg, vp.RGBAAt(399, 95), "left of the canvas")
		assert.Equal(t, long, vp.RGBAAt(400, 95), "tick at canvas pixel 0")
		assert.Equal(t, short, vp.RGBAAt(425, 95), "tick at canvas pixel 25")
	})

	t.Run("clearing the label band keeps ticks", func(t *testing.T) {
		canvas.Context2D().ClearRect(0, 0, 6000, 51)
		for y := 0; y < 51; y++ {
			for x := 0; x < 10; x++ {
				require.Zero(t, img.RGBAAt(x, y).A)
			}
		}
		assert.Equal(t, long, img.RGBAAt(100, 75), "ticks are kept")
	})
}

func TestWritePNG(t *testing.T) {
	canvas := raster.NewCanvas()
	canvas.SetIntrinsicSize(50, 20)

	buf := &bytes.Buffer{}
	require.NoError(t, raster.WritePNG(buf, canvas.Viewport(30, color.White)))

	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

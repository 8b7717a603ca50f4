// Package raster provides an image-backed canvas, for rendering a ruler into
// a picture (e.g., a PNG snapshot).
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ja-he/timeruler/internal/host"
	"github.com/ja-he/timeruler/internal/ruler"
)

// Canvas is a ruler.Canvas drawing into an RGBA image.
type Canvas struct {
	host.CanvasBase

	img *image.RGBA
	ctx context
}

// NewCanvas returns a new, empty (zero-sized) image canvas.
func NewCanvas() *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, 0, 0))}
	c.ctx.canvas = c
	c.ctx.stroke = color.RGBA{A: 0xff}
	c.ctx.lineWidth = 1
	return c
}

// SetIntrinsicSize sets the size in pixels and reallocates (clears) the image.
func (c *Canvas) SetIntrinsicSize(w, h int) {
	c.CanvasBase.SetIntrinsicSize(w, h)
	c.img = image.NewRGBA(image.Rect(0, 0, w+1, h))
}

// Context2D returns the drawing context of the canvas.
func (c *Canvas) Context2D() ruler.Context2D { return &c.ctx }

// Image returns the canvas' image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Viewport composes the canvas at its left offset onto a viewport of the given
// width, filled with the given background color.
func (c *Canvas) Viewport(width int, bg color.Color) *image.RGBA {
	bounds := c.img.Bounds()
	vp := image.NewRGBA(image.Rect(0, 0, width, bounds.Dy()))
	draw.Draw(vp, vp.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	dst := bounds.Add(image.Point{X: c.Left()})
	draw.Draw(vp, dst, c.img, image.Point{}, draw.Over)
	return vp
}

// WritePNG encodes the image as PNG to the writer.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("unable to encode png (%w)", err)
	}
	return nil
}

// ParseColor parses a hex color (e.g., '#a0af84' or '#fff').
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color '%s' (%w)", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

type point struct{ x, y int }

// context implements ruler.Context2D on a Canvas.
type context struct {
	canvas *Canvas

	path      [][2]point
	cursor    *point
	stroke    color.RGBA
	lineWidth int
	face      font.Face
}

func (c *context) BeginPath() {
	c.path = nil
	c.cursor = nil
}

func (c *context) MoveTo(x, y int) { c.cursor = &point{x, y} }

func (c *context) LineTo(x, y int) {
	p := point{x, y}
	if c.cursor != nil {
		c.path = append(c.path, [2]point{*c.cursor, p})
	}
	c.cursor = &p
}

func (c *context) Stroke() {
	for _, s := range c.path {
		c.line(s[0], s[1])
	}
}

// line rasterizes a line (Bresenham), widened to the line width around the
// ideal line.
func (c *context) line(from, to point) {
	dx, dy := abs(to.x-from.x), -abs(to.y-from.y)
	sx, sy := sign(to.x-from.x), sign(to.y-from.y)
	errAcc := dx + dy

	x, y := from.x, from.y
	for {
		c.plot(x, y, dx >= -dy)
		if x == to.x && y == to.y {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x += sx
		}
		if e2 <= dx {
			errAcc += dx
			y += sy
		}
	}
}

func (c *context) plot(x, y int, horizontal bool) {
	w := c.lineWidth
	if w < 1 {
		w = 1
	}
	for i := -(w - 1) / 2; i <= w/2; i++ {
		if horizontal {
			c.canvas.img.SetRGBA(x, y+i, c.stroke)
		} else {
			c.canvas.img.SetRGBA(x+i, y, c.stroke)
		}
	}
}

func (c *context) ClearRect(x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.canvas.img.Bounds())
	draw.Draw(c.canvas.img, r, image.Transparent, image.Point{}, draw.Src)
}

// SetFont accepts any CSS-like font string; all text is drawn in the basic
// 7x13 face.
func (c *context) SetFont(f string) {
	if c.face == nil {
		log.Debug().Str("font", f).Msg("using basic 7x13 face for requested font")
	}
	c.face = basicfont.Face7x13
}

func (c *context) SetLineWidth(w int) { c.lineWidth = w }

func (c *context) SetStrokeStyle(s string) {
	col, err := ParseColor(s)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring stroke style")
		return
	}
	c.stroke = col
}

// StrokeText draws text with its baseline at y, starting at x.
func (c *context) StrokeText(text string, x, y int) {
	face := c.face
	if face == nil {
		face = basicfont.Face7x13
	}
	d := &font.Drawer{
		Dst:  c.canvas.img,
		Src:  image.NewUniform(c.stroke),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Package raster implements background.Canvas on the gg software
// rasterizer so effects can render without a browser.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"github.com/simukka/backdrop/background"
)

// Canvas is a background.Canvas backed by a gg.Context. A zero-area canvas
// has no context and every draw is a no-op.
type Canvas struct {
	dc     *gg.Context
	width  int
	height int
}

// New creates a canvas of the given size.
func New(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		c.dc = nil
		c.width, c.height = max(width, 0), max(height, 0)
		return
	}
	c.width, c.height = width, height
	if c.dc == nil {
		c.dc = gg.NewContext(width, height)
		return
	}
	if err := c.dc.Resize(width, height); err != nil {
		background.DebugError("raster resize:", err)
	}
}

func (c *Canvas) Clear() {
	if c.dc == nil {
		return
	}
	c.dc.Clear()
}

func (c *Canvas) FillRect(x, y, w, h float64, p background.Paint) {
	if c.dc == nil {
		return
	}
	c.dc.SetFillBrush(brush(p))
	c.dc.DrawRectangle(x, y, w, h)
	c.fill()
}

func (c *Canvas) FillCircle(x, y, r float64, col background.Color) {
	if c.dc == nil || r <= 0 {
		return
	}
	c.dc.SetFillBrush(gg.Solid(rgba(col)))
	c.dc.DrawCircle(x, y, r)
	c.fill()
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, col background.Color) {
	if c.dc == nil {
		return
	}
	c.dc.SetStrokeBrush(gg.Solid(rgba(col)))
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(x1, y1)
	c.dc.LineTo(x2, y2)
	if err := c.dc.Stroke(); err != nil {
		background.DebugError("raster stroke:", err)
	}
}

func (c *Canvas) FillPolygon(pts []background.Point, p background.Paint) {
	if c.dc == nil || len(pts) < 3 {
		return
	}
	c.dc.SetFillBrush(brush(p))
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		c.dc.LineTo(pt.X, pt.Y)
	}
	c.dc.ClosePath()
	c.fill()
}

func (c *Canvas) fill() {
	if err := c.dc.Fill(); err != nil {
		background.DebugError("raster fill:", err)
	}
}

// PixelData returns the live RGBA buffer.
func (c *Canvas) PixelData() []uint8 {
	if c.dc == nil {
		return nil
	}
	return c.dc.ResizeTarget().Data()
}

// PutPixelData copies data into the buffer. Extra bytes are ignored.
func (c *Canvas) PutPixelData(data []uint8) {
	if c.dc == nil {
		return
	}
	copy(c.dc.ResizeTarget().Data(), data)
}

// Image returns a snapshot of the surface, or nil for a zero-area canvas.
func (c *Canvas) Image() image.Image {
	if c.dc == nil {
		return nil
	}
	return c.dc.Image()
}

// EncodePNG writes the surface as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.dc == nil {
		return fmt.Errorf("encode png: empty %dx%d surface", c.width, c.height)
	}
	if err := png.Encode(w, c.dc.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func rgba(c background.Color) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, c.A)
}

func brush(p background.Paint) gg.Brush {
	switch p := p.(type) {
	case background.Color:
		return gg.Solid(rgba(p))
	case background.LinearGradient:
		g := gg.NewLinearGradientBrush(p.X0, p.Y0, p.X1, p.Y1)
		for _, s := range p.Stops {
			g.AddColorStop(s.Offset, rgba(s.Color))
		}
		return g
	case background.RadialGradient:
		// canvas puts the start circle at (X0, Y0); gg calls that the focus
		g := gg.NewRadialGradientBrush(p.X1, p.Y1, p.R0, p.R1).SetFocus(p.X0, p.Y0)
		for _, s := range p.Stops {
			g.AddColorStop(s.Offset, rgba(s.Color))
		}
		return g
	}
	return gg.Solid(gg.Transparent)
}

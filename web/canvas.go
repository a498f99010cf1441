//go:build js

package web

import (
	"math"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/backdrop/background"
)

// Canvas2D adapts an HTML canvas element's 2D context to background.Canvas.
type Canvas2D struct {
	el    *js.Object
	ctx   *js.Object
	image *js.Object
}

// NewCanvas2D wraps el. It returns nil when el has no 2D context.
func NewCanvas2D(el *js.Object) *Canvas2D {
	if el == nil || el == js.Undefined {
		return nil
	}
	ctx := el.Call("getContext", "2d")
	if ctx == nil || ctx == js.Undefined {
		return nil
	}
	return &Canvas2D{el: el, ctx: ctx}
}

// Element returns the wrapped canvas element.
func (c *Canvas2D) Element() *js.Object {
	return c.el
}

func (c *Canvas2D) Size() (int, int) {
	return c.el.Get("width").Int(), c.el.Get("height").Int()
}

func (c *Canvas2D) Resize(width, height int) {
	c.el.Set("width", width)
	c.el.Set("height", height)
	c.image = nil
}

func (c *Canvas2D) Clear() {
	w, h := c.Size()
	c.ctx.Call("clearRect", 0, 0, w, h)
}

func (c *Canvas2D) FillRect(x, y, w, h float64, p background.Paint) {
	c.ctx.Set("fillStyle", c.style(p))
	c.ctx.Call("fillRect", x, y, w, h)
}

func (c *Canvas2D) FillCircle(x, y, r float64, col background.Color) {
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, r, 0, math.Pi*2)
	c.ctx.Set("fillStyle", col.CSS())
	c.ctx.Call("fill")
}

func (c *Canvas2D) Line(x1, y1, x2, y2, width float64, col background.Color) {
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x1, y1)
	c.ctx.Call("lineTo", x2, y2)
	c.ctx.Set("strokeStyle", col.CSS())
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("stroke")
}

func (c *Canvas2D) FillPolygon(pts []background.Point, p background.Paint) {
	if len(pts) < 3 {
		return
	}
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		c.ctx.Call("lineTo", pt.X, pt.Y)
	}
	c.ctx.Call("closePath")
	c.ctx.Set("fillStyle", c.style(p))
	c.ctx.Call("fill")
}

// PixelData reads the whole surface. The returned slice shares memory with
// the ImageData handed back by PutPixelData.
func (c *Canvas2D) PixelData() []uint8 {
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		c.image = nil
		return nil
	}
	c.image = c.ctx.Call("getImageData", 0, 0, w, h)
	buf := c.image.Get("data").Get("buffer")
	return js.Global.Get("Uint8Array").New(buf).Interface().([]uint8)
}

func (c *Canvas2D) PutPixelData(data []uint8) {
	if c.image == nil {
		return
	}
	dst := js.Global.Get("Uint8Array").New(c.image.Get("data").Get("buffer"))
	if dst.Get("length").Int() != len(data) {
		return
	}
	dst.Call("set", data)
	c.ctx.Call("putImageData", c.image, 0, 0)
}

func (c *Canvas2D) style(p background.Paint) interface{} {
	switch p := p.(type) {
	case background.Color:
		return p.CSS()
	case background.LinearGradient:
		g := c.ctx.Call("createLinearGradient", p.X0, p.Y0, p.X1, p.Y1)
		addStops(g, p.Stops)
		return g
	case background.RadialGradient:
		g := c.ctx.Call("createRadialGradient", p.X0, p.Y0, p.R0, p.X1, p.Y1, p.R1)
		addStops(g, p.Stops)
		return g
	}
	return background.Transparent.CSS()
}

func addStops(g *js.Object, stops []background.Stop) {
	for _, s := range stops {
		g.Call("addColorStop", s.Offset, s.Color.CSS())
	}
}

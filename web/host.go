//go:build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/backdrop/background"
)

// CanvasID is the id of the background canvas element.
const CanvasID = "bg-canvas"

const canvasStyle = "position: fixed; top: 0; left: 0; width: 100%; height: 100%; z-index: -1; pointer-events: none;"

// DOMHost places the background canvas behind the page and owns the
// body's light-mode class.
type DOMHost struct{}

// CreateSurface removes any previous background canvas and inserts a fresh
// viewport-sized one as the body's first child.
func (DOMHost) CreateSurface() background.Canvas {
	doc := js.Global.Get("document")
	if old := doc.Call("getElementById", CanvasID); old != nil && old != js.Undefined {
		old.Call("remove")
	}

	el := doc.Call("createElement", "canvas")
	el.Set("id", CanvasID)
	el.Get("style").Set("cssText", canvasStyle)
	body := doc.Get("body")
	body.Call("insertBefore", el, body.Get("firstChild"))

	el.Set("width", js.Global.Get("innerWidth").Int())
	el.Set("height", js.Global.Get("innerHeight").Int())

	c := NewCanvas2D(el)
	if c == nil {
		return nil
	}
	return c
}

func (DOMHost) SetLightMode(light bool) {
	body := js.Global.Get("document").Get("body")
	if light {
		body.Get("classList").Call("add", "light-mode")
	} else {
		body.Get("classList").Call("remove", "light-mode")
	}
}
